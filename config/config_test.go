package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/slimefinder"
	"github.com/hupe1980/slimefinder/codec"
	"github.com/hupe1980/slimefinder/internal/scanner"
)

const flat = `worldSeed=12345
centerChunkX=-40
centerChunkZ=17
searchRadius=300
slimeRadius=8
threadCount=4
topN=5
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Flat(t *testing.T) {
	cfg, err := Load(writeFile(t, "config", flat))
	require.NoError(t, err)

	assert.Equal(t, slimefinder.Query{
		Seed:         12345,
		CenterX:      -40,
		CenterZ:      17,
		SearchRadius: 300,
		WindowRadius: 8,
		Workers:      4,
		TopN:         5,
		Shape:        scanner.Even,
	}, cfg.Query())

	assert.Equal(t, "go-json", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
	d, err := cfg.Progress.Duration()
	require.NoError(t, err)
	assert.Equal(t, time.Second, d)
}

func TestLoad_Template(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config")
	require.NoError(t, WriteTemplate(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Template(), data)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(8594768700734077283), cfg.WorldSeed)
	assert.Equal(t, uint32(8), cfg.SlimeRadius)
	assert.Equal(t, 10, cfg.TopN)
	assert.True(t, cfg.Output.MinioSecure)
}

func TestLoad_Tables(t *testing.T) {
	content := flat + `shape = "odd"

[output]
path = "out/report.json"
format = "text"
compression = "zstd"

[logging]
level = "debug"
format = "json"

[metrics]
listen = ":9090"

[progress]
interval = "250ms"
`
	cfg, err := Load(writeFile(t, "config.toml", content))
	require.NoError(t, err)

	assert.Equal(t, scanner.Odd, cfg.Shape)
	assert.Equal(t, ":9090", cfg.Metrics.Listen)

	c, err := cfg.Output.Codec()
	require.NoError(t, err)
	assert.Equal(t, codec.Text{}, c)

	comp, err := cfg.Output.CompressionKind()
	require.NoError(t, err)
	assert.Equal(t, codec.CompressionZstd, comp)

	lvl, err := cfg.Logging.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	d, err := cfg.Progress.Duration()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)
}

func TestLoad_YAML(t *testing.T) {
	content := `worldSeed: -99
centerChunkX: 3
centerChunkZ: "4"
searchRadius: 10
slimeRadius: 2
threadCount: 2
topN: 3
shape: odd
output:
  compression: lz4
`
	cfg, err := Load(writeFile(t, "config.yaml", content))
	require.NoError(t, err)

	assert.Equal(t, int64(-99), cfg.WorldSeed)
	assert.Equal(t, int32(4), cfg.CenterChunkZ)
	assert.Equal(t, scanner.Odd, cfg.Shape)
	assert.Equal(t, "lz4", cfg.Output.Compression)
	assert.Equal(t, "go-json", cfg.Output.Format)
}

func TestLoad_QuotedNumber(t *testing.T) {
	cfg, err := Load(writeFile(t, "config", `worldSeed = " 42 "
centerChunkX = 0
centerChunkZ = 0
searchRadius = 1
slimeRadius = 1
threadCount = 1
topN = 1
`))
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.WorldSeed)
}

func TestLoad_NumericFormatError(t *testing.T) {
	tests := []struct {
		name string
		line string
		key  string
	}{
		{"not a number", `topN = "ten"`, "topN"},
		{"negative radius", `searchRadius = -1`, "searchRadius"},
		{"beyond int32", `centerChunkX = 3000000000`, "centerChunkX"},
		{"fraction", `slimeRadius = 2.5`, "slimeRadius"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := map[string]string{
				"worldSeed": "1", "centerChunkX": "0", "centerChunkZ": "0",
				"searchRadius": "5", "slimeRadius": "2", "threadCount": "1", "topN": "1",
			}
			content := tt.line + "\n"
			for k, v := range values {
				if k != tt.key {
					content += k + " = " + v + "\n"
				}
			}

			_, err := Load(writeFile(t, "config", content))
			var nfe *NumericFormatError
			require.True(t, errors.As(err, &nfe), "got %v", err)
			assert.Equal(t, tt.key, nfe.Key)
		})
	}
}

func TestLoad_ConfigurationError(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero threads", strings.Replace(flat, "threadCount=4", "threadCount=0", 1)},
		{"syntax", "worldSeed = 12a\n"},
		{"missing key", "worldSeed = 1\n"},
		{"unknown shape", flat + `shape = "square"` + "\n"},
		{"unknown format", flat + "[output]\nformat = \"xml\"\n"},
		{"bad interval", flat + "[progress]\ninterval = \"soon\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "config", tt.content))
			var cerr *ConfigurationError
			require.True(t, errors.As(err, &cerr), "got %v", err)

			var nfe *NumericFormatError
			assert.False(t, errors.As(err, &nfe))
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "config"))

	var cerr *ConfigurationError
	require.True(t, errors.As(err, &cerr))
	assert.ErrorIs(t, err, ErrNotFound)
}
