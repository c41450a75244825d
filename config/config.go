// Package config loads the search configuration file.
//
// The file is TOML, or YAML when the name ends in .yaml or .yml. The flat
// key=value layout of a properties file is valid TOML, so plain properties
// files keep working:
//
//	worldSeed=12345
//	centerChunkX=0
//	centerChunkZ=0
//	searchRadius=1000
//	slimeRadius=8
//	threadCount=8
//	topN=10
//
// Optional [output], [logging], [metrics] and [progress] tables configure the
// command line around the search.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/slimefinder"
	"github.com/hupe1980/slimefinder/codec"
	"github.com/hupe1980/slimefinder/internal/progress"
	"github.com/hupe1980/slimefinder/internal/scanner"
)

//go:embed template.toml
var template []byte

// Template returns the default configuration file.
func Template() []byte {
	out := make([]byte, len(template))
	copy(out, template)
	return out
}

// WriteTemplate writes the default configuration file to path.
func WriteTemplate(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, template, 0o644); err != nil {
		return fmt.Errorf("write config template %s: %w", path, err)
	}
	return nil
}

// Config holds the search parameters and the command line settings.
type Config struct {
	WorldSeed    int64
	CenterChunkX int32
	CenterChunkZ int32
	SearchRadius uint32
	SlimeRadius  uint32
	ThreadCount  int
	TopN         int
	Shape        scanner.Shape

	Output   OutputConfig
	Logging  LoggingConfig
	Metrics  MetricsConfig
	Progress ProgressConfig
}

// OutputConfig selects where the report goes.
type OutputConfig struct {
	Path           string `toml:"path" yaml:"path"`
	Format         string `toml:"format" yaml:"format"`           // "go-json", "json" or "text"
	Compression    string `toml:"compression" yaml:"compression"` // "none", "zstd" or "lz4"
	S3Bucket       string `toml:"s3_bucket" yaml:"s3_bucket"`
	S3Prefix       string `toml:"s3_prefix" yaml:"s3_prefix"` // also prefixes MinIO keys
	S3Region       string `toml:"s3_region" yaml:"s3_region"`
	MinioEndpoint  string `toml:"minio_endpoint" yaml:"minio_endpoint"`
	MinioBucket    string `toml:"minio_bucket" yaml:"minio_bucket"`
	MinioAccessKey string `toml:"minio_access_key" yaml:"minio_access_key"`
	MinioSecretKey string `toml:"minio_secret_key" yaml:"minio_secret_key"`
	MinioSecure    bool   `toml:"minio_secure" yaml:"minio_secure"`
}

// Codec returns the report codec named by Format.
func (o OutputConfig) Codec() (codec.Codec, error) {
	c, ok := codec.ByName(o.Format)
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", o.Format)
	}
	return c, nil
}

// CompressionKind returns the compression named by Compression.
func (o OutputConfig) CompressionKind() (codec.Compression, error) {
	return codec.ParseCompression(o.Compression)
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "text" or "json"
}

// SlogLevel parses Level.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("logging level: %w", err)
	}
	return lvl, nil
}

// Logger builds the search logger.
func (l LoggingConfig) Logger() (*slimefinder.Logger, error) {
	lvl, err := l.SlogLevel()
	if err != nil {
		return nil, err
	}
	switch l.Format {
	case "", "text":
		return slimefinder.NewTextLogger(lvl), nil
	case "json":
		return slimefinder.NewJSONLogger(lvl), nil
	default:
		return nil, fmt.Errorf("unknown logging format %q", l.Format)
	}
}

type MetricsConfig struct {
	Listen string `toml:"listen" yaml:"listen"`
}

type ProgressConfig struct {
	Interval string `toml:"interval" yaml:"interval"`
}

// Duration parses Interval. An empty interval is progress.DefaultInterval.
func (p ProgressConfig) Duration() (time.Duration, error) {
	if p.Interval == "" {
		return progress.DefaultInterval, nil
	}
	d, err := time.ParseDuration(p.Interval)
	if err != nil {
		return 0, fmt.Errorf("progress interval: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("progress interval must be positive, got %s", d)
	}
	return d, nil
}

// Query converts the search keys to a query.
func (c *Config) Query() slimefinder.Query {
	return slimefinder.Query{
		Seed:         c.WorldSeed,
		CenterX:      c.CenterChunkX,
		CenterZ:      c.CenterChunkZ,
		SearchRadius: c.SearchRadius,
		WindowRadius: c.SlimeRadius,
		Workers:      c.ThreadCount,
		TopN:         c.TopN,
		Shape:        c.Shape,
	}
}

// sections mirrors the optional tables. Top-level search keys are decoded
// separately so that each one can report its own numeric error.
type sections struct {
	Output   OutputConfig   `toml:"output" yaml:"output"`
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`
	Metrics  MetricsConfig  `toml:"metrics" yaml:"metrics"`
	Progress ProgressConfig `toml:"progress" yaml:"progress"`
}

func defaults() sections {
	return sections{
		Output:   OutputConfig{Format: "go-json", Compression: "none", MinioSecure: true},
		Logging:  LoggingConfig{Level: "info", Format: "text"},
		Progress: ProgressConfig{Interval: progress.DefaultInterval.String()},
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ConfigurationError{Path: path, Err: fmt.Errorf("%w: %w", ErrNotFound, err)}
		}
		return nil, &ConfigurationError{Path: path, Err: err}
	}

	raw := map[string]any{}
	sec := defaults()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, &ConfigurationError{Path: path, Err: fmt.Errorf("parse yaml: %w", err)}
		}
		if err := yaml.Unmarshal(data, &sec); err != nil {
			return nil, &ConfigurationError{Path: path, Err: fmt.Errorf("parse yaml: %w", err)}
		}
	default:
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, &ConfigurationError{Path: path, Err: fmt.Errorf("parse toml: %w", err)}
		}
		if err := toml.Unmarshal(data, &sec); err != nil {
			return nil, &ConfigurationError{Path: path, Err: fmt.Errorf("parse toml: %w", err)}
		}
	}

	cfg, err := fromRaw(raw)
	if err != nil {
		var nfe *NumericFormatError
		if errors.As(err, &nfe) {
			nfe.Path = path
			return nil, nfe
		}
		return nil, &ConfigurationError{Path: path, Err: err}
	}
	cfg.Output, cfg.Logging, cfg.Metrics, cfg.Progress = sec.Output, sec.Logging, sec.Metrics, sec.Progress

	if err := cfg.validate(); err != nil {
		return nil, &ConfigurationError{Path: path, Err: err}
	}
	return cfg, nil
}

func fromRaw(raw map[string]any) (*Config, error) {
	cfg := &Config{}
	var err error

	if cfg.WorldSeed, err = integer(raw, "worldSeed", math.MinInt64, math.MaxInt64); err != nil {
		return nil, err
	}
	x, err := integer(raw, "centerChunkX", math.MinInt32, math.MaxInt32)
	if err != nil {
		return nil, err
	}
	z, err := integer(raw, "centerChunkZ", math.MinInt32, math.MaxInt32)
	if err != nil {
		return nil, err
	}
	search, err := integer(raw, "searchRadius", 0, math.MaxInt32)
	if err != nil {
		return nil, err
	}
	slime, err := integer(raw, "slimeRadius", 0, math.MaxInt16)
	if err != nil {
		return nil, err
	}
	threads, err := integer(raw, "threadCount", math.MinInt32, math.MaxInt32)
	if err != nil {
		return nil, err
	}
	topN, err := integer(raw, "topN", math.MinInt32, math.MaxInt32)
	if err != nil {
		return nil, err
	}
	cfg.CenterChunkX, cfg.CenterChunkZ = int32(x), int32(z)
	cfg.SearchRadius, cfg.SlimeRadius = uint32(search), uint32(slime)
	cfg.ThreadCount, cfg.TopN = int(threads), int(topN)

	if v, ok := raw["shape"]; ok {
		name, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("key \"shape\": want a string, got %T", v)
		}
		if cfg.Shape, err = scanner.ParseShape(strings.TrimSpace(name)); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// integer reads a required integer key. Quoted values are parsed as decimal.
func integer(raw map[string]any, key string, lo, hi int64) (int64, error) {
	v, ok := raw[key]
	if !ok {
		return 0, fmt.Errorf("missing key %q", key)
	}
	fail := func(err error) (int64, error) {
		return 0, &NumericFormatError{Key: key, Value: v, Err: err}
	}

	var n int64
	switch x := v.(type) {
	case int64:
		n = x
	case int:
		n = int64(x)
	case uint64:
		if x > math.MaxInt64 {
			return fail(strconv.ErrRange)
		}
		n = int64(x)
	case float64:
		if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
			return fail(strconv.ErrSyntax)
		}
		n = int64(x)
	case string:
		var err error
		if n, err = strconv.ParseInt(strings.TrimSpace(x), 10, 64); err != nil {
			return fail(err)
		}
	default:
		return fail(fmt.Errorf("unsupported type %T", v))
	}

	if n < lo || n > hi {
		return fail(strconv.ErrRange)
	}
	return n, nil
}

func (c *Config) validate() error {
	if c.ThreadCount <= 0 {
		return fmt.Errorf("threadCount must be positive, got %d", c.ThreadCount)
	}
	if c.TopN <= 0 {
		return fmt.Errorf("topN must be positive, got %d", c.TopN)
	}
	if _, err := c.Output.Codec(); err != nil {
		return err
	}
	if _, err := c.Output.CompressionKind(); err != nil {
		return err
	}
	if _, err := c.Logging.Logger(); err != nil {
		return err
	}
	if _, err := c.Progress.Duration(); err != nil {
		return err
	}
	return c.Query().Validate()
}
