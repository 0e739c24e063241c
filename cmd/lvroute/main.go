// Command lvroute reads a cost table and prints every cheapest journey that
// visits each location exactly once.
//
//	lvroute -input cities.txt -workers 4
//
// Settings come from an optional TOML file (-config); flags override it.
package main

import (
	// stdlib
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	// internal
	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/loader"
	"github.com/katalvlaran/lvroute/report"
	"github.com/katalvlaran/lvroute/symbol"
	"github.com/katalvlaran/lvroute/tsp"

	// external
	"github.com/lmittmann/tint"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process plumbing; it returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("lvroute", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		cfg_path  = flags.String("config", "", "Path to TOML config file")
		input     = flags.String("input", "", "Path to cost table (overrides [input] path)")
		workers   = flags.Int("workers", 0, "Concurrent search shards (overrides [search] workers)")
		log_level = flags.String("log-level", "", "debug|info|warn|error (overrides [logging] level)")
	)
	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg := config.Default()
	if *cfg_path != "" {
		var err error
		if cfg, err = config.Unmarshal(*cfg_path); err != nil {
			slog.New(tint.NewHandler(stderr, nil)).Error("Config file not loaded", "provided path", *cfg_path, "error", err)
			return 1
		}
	}
	if *input != "" {
		cfg.Input.Path = *input
	}
	if *workers > 0 {
		cfg.Search.Workers = *workers
	}
	if *log_level != "" {
		cfg.Logging.Level = *log_level
	}

	level, ok := cfg.Logging.SlogLevel()
	logger := slog.New(tint.NewHandler(stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	}))
	if !ok {
		logger.Warn("No valid logging level provided. Defaulting to LevelError", "provided value", cfg.Logging.Level)
	}

	if err := solve(ctx, logger, cfg, stdout); err != nil {
		logger.Error("Search failed", "error", err)
		return 1
	}
	return 0
}

func solve(ctx context.Context, logger *slog.Logger, cfg *config.ConfigFile, stdout io.Writer) error {
	var load_opts []loader.Option
	if cfg.Input.SortLocations {
		load_opts = append(load_opts, loader.WithSortedLocations())
	}

	syms := symbol.NewTable()
	table, locs, err := loader.LoadFile(cfg.Input.Path, syms, load_opts...)
	if err != nil {
		return err
	}
	logger.Info("Cost table loaded", "path", cfg.Input.Path, "locations", len(locs), "edges", table.Len())

	started := time.Now()
	res, err := tsp.SolveBruteForce(ctx, table, locs,
		tsp.WithWorkers(cfg.Search.Workers),
		tsp.WithDistinctReversals(cfg.Search.DistinctReversals),
		tsp.WithProgressEvery(cfg.Search.ProgressEvery),
		tsp.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("solve %s: %w", cfg.Input.Path, err)
	}
	logger.Info("Search finished",
		"evaluated", res.Evaluated,
		"winners", len(res.Winners),
		"elapsed", time.Since(started))

	switch config.ReportFormat(cfg.Report.Format) {
	case config.ReportFormatTable:
		return report.Table(stdout, res, syms)
	default:
		return report.Text(stdout, res, syms)
	}
}
