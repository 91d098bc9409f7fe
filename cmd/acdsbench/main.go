package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/udisondev/acds/internal/bench"
	"github.com/udisondev/acds/internal/config"
	"github.com/udisondev/acds/internal/data"
	"github.com/udisondev/acds/internal/report"
)

const BenchConfigPath = "config/acdsbench.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := BenchConfigPath
	if p := os.Getenv("ACDS_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadBench(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("acdsbench starting",
		"log_level", cfg.LogLevel,
		"damage", cfg.Damage,
		"report", cfg.ReportPath)

	suites, err := selectSuites(cfg)
	if err != nil {
		return err
	}

	if err := bench.Verify(ctx, cfg.Damage, suites, cfg.VerifyWorkers); err != nil {
		return fmt.Errorf("verifying suites: %w", err)
	}
	slog.Info("suites verified", "count", len(suites))

	var results []bench.Result
	if !cfg.SkipMeasure {
		for _, s := range suites {
			r, err := bench.Measure(ctx, cfg.Damage, s)
			results = append(results, r...)
			if err != nil {
				return fmt.Errorf("measuring suite %s: %w", s.Name, err)
			}
		}
	}

	if cfg.ReportPath == "" {
		return nil
	}

	curve := report.BuildCurve(cfg.Damage, cfg.NominalMin, cfg.NominalMax)
	if err := report.WriteXLSX(cfg.ReportPath, curve, results); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	slog.Info("report written", "path", cfg.ReportPath, "curve_rows", len(curve), "results", len(results))

	return nil
}

// selectSuites returns the built-in suites plus custom ones from the suites
// file, filtered by cfg.Suites.
func selectSuites(cfg config.Bench) ([]data.Suite, error) {
	if err := data.LoadSuites(); err != nil {
		return nil, fmt.Errorf("loading suites: %w", err)
	}
	all := data.Suites()

	if cfg.SuitesFile != "" {
		custom, err := data.LoadSuitesFile(cfg.SuitesFile)
		if err != nil {
			return nil, err
		}
		slog.Info("loaded custom suites", "path", cfg.SuitesFile, "count", len(custom))
		all = append(all, custom...)
	}

	if len(cfg.Suites) == 0 {
		return all, nil
	}

	selected := make([]data.Suite, 0, len(cfg.Suites))
	for _, name := range cfg.Suites {
		i := slices.IndexFunc(all, func(s data.Suite) bool { return s.Name == name })
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", data.ErrUnknownSuite, name)
		}
		selected = append(selected, all[i])
	}
	return selected, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
