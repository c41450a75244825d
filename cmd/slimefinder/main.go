// Command slimefinder ranks the chunk positions of a Minecraft world by the
// number of slime chunks within a disk around them.
//
//	slimefinder [flags] [configPath]
//
// A missing configuration file is replaced by the default template and the
// command exits with status 1. A malformed number exits with status 2.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hupe1980/slimefinder"
	"github.com/hupe1980/slimefinder/blobstore"
	"github.com/hupe1980/slimefinder/blobstore/minio"
	"github.com/hupe1980/slimefinder/blobstore/s3"
	"github.com/hupe1980/slimefinder/config"
	"github.com/hupe1980/slimefinder/internal/progress"
	"github.com/hupe1980/slimefinder/metric"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type flags struct {
	config   string
	out      string
	logLevel string
	metrics  string
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("slimefinder", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.config, "config", "", "configuration file (default \"config\")")
	fs.StringVar(&f.out, "out", "", "report file, overrides [output].path")
	fs.StringVar(&f.logLevel, "log-level", "", "log level, overrides [logging].level")
	fs.StringVar(&f.metrics, "metrics", "", "metrics listen address, overrides [metrics].listen")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: slimefinder [flags] [configPath]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return f, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		if f.config == "" {
			f.config = fs.Arg(0)
		}
	default:
		fs.Usage()
		return f, errors.New("too many arguments")
	}
	if f.config == "" {
		f.config = "config"
	}
	return f, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	fmt.Fprintf(stderr, "reading configuration from %s...\n", f.config)
	cfg, err := config.Load(f.config)
	if err != nil {
		return configFailure(f.config, err, stderr)
	}
	if f.out != "" {
		cfg.Output.Path = f.out
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	if f.metrics != "" {
		cfg.Metrics.Listen = f.metrics
	}

	if err := search(ctx, cfg, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}
	return exitOK
}

func configFailure(path string, err error, stderr io.Writer) int {
	var nfe *config.NumericFormatError
	switch {
	case errors.Is(err, config.ErrNotFound):
		fmt.Fprintf(stderr, "error: cannot read config file %s\n", path)
		fmt.Fprintln(stderr, "writing the default configuration...")
		if werr := config.WriteTemplate(path); werr != nil {
			fmt.Fprintf(stderr, "error: %v\n", werr)
			return exitFailure
		}
		fmt.Fprintln(stderr, "done, edit the parameters and run again")
		return exitFailure
	case errors.As(err, &nfe):
		fmt.Fprintf(stderr, "error: malformed number in the config file: %v\n", nfe)
		return exitUsage
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}
}

func search(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) error {
	logger, err := cfg.Logging.Logger()
	if err != nil {
		return err
	}
	interval, err := cfg.Progress.Duration()
	if err != nil {
		return err
	}

	opts := []slimefinder.Option{
		slimefinder.WithLogger(logger),
		slimefinder.WithProgress(interval, func(s progress.Snapshot) {
			fmt.Fprintln(stderr, progress.Line(s))
		}),
	}
	if cfg.Metrics.Listen != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, slimefinder.WithMetricsCollector(metric.NewPrometheus(reg)))
		stopMetrics := serveMetrics(cfg.Metrics.Listen, reg, stderr)
		defer stopMetrics()
	}

	q := cfg.Query()
	fmt.Fprintf(stderr, "seed %d, searching %d chunks around [%d, %d] with %d workers...\n",
		q.Seed, q.SearchRadius, q.CenterX, q.CenterZ, q.Workers)

	start := time.Now()
	results, err := slimefinder.Search(ctx, q, opts...)
	if err != nil {
		return err
	}
	report := slimefinder.Report{Query: q, Elapsed: time.Since(start), Results: results}
	fmt.Fprintf(stderr, "search finished in %.3fs\n", report.Elapsed.Seconds())

	text, err := report.MarshalText()
	if err != nil {
		return err
	}
	if _, err := stdout.Write(text); err != nil {
		return err
	}

	if cfg.Output.Path == "" {
		return nil
	}
	return writeReport(ctx, cfg.Output, report, stderr)
}

func writeReport(ctx context.Context, out config.OutputConfig, report slimefinder.Report, stderr io.Writer) error {
	c, err := out.Codec()
	if err != nil {
		return err
	}
	comp, err := out.CompressionKind()
	if err != nil {
		return err
	}
	store, name, err := openStore(ctx, out)
	if err != nil {
		return err
	}
	written, err := slimefinder.WriteReport(ctx, store, name, report, c, comp)
	if err != nil {
		return err
	}
	fmt.Fprintf(stderr, "report written to %s\n", written)
	return nil
}

// openStore picks the report sink. S3 wins over MinIO, which wins over the
// local filesystem.
func openStore(ctx context.Context, out config.OutputConfig) (blobstore.Store, string, error) {
	switch {
	case out.S3Bucket != "":
		opts := []s3.Option{s3.WithPrefix(out.S3Prefix)}
		if out.S3Region != "" {
			opts = append(opts, s3.WithRegion(out.S3Region))
		}
		store, err := s3.New(ctx, out.S3Bucket, opts...)
		if err != nil {
			return nil, "", err
		}
		return store, out.Path, nil
	case out.MinioEndpoint != "":
		store, err := minio.Dial(out.MinioEndpoint, out.MinioAccessKey, out.MinioSecretKey,
			out.MinioSecure, out.MinioBucket, out.S3Prefix)
		if err != nil {
			return nil, "", err
		}
		return store, out.Path, nil
	default:
		return blobstore.NewLocalStore(filepath.Dir(out.Path)), filepath.Base(out.Path), nil
	}
}

func serveMetrics(addr string, reg *prometheus.Registry, stderr io.Writer) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(stderr, "metrics server: %v\n", err)
		}
	}()
	fmt.Fprintf(stderr, "serving metrics on %s/metrics\n", addr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
