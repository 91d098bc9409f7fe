// Package bench runs the ACDS benchmark suites.
//
// Three strategies are compared on the same suites: the default vector
// scan, the early-exit scan and the fractional-list formulation.
package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/acds/internal/data"
	"github.com/udisondev/acds/internal/game/combat"
)

// ErrMismatch is returned by Verify when two strategies disagree.
var ErrMismatch = errors.New("strategy mismatch")

// Strategy names one way of computing damage reduction.
type Strategy string

const (
	StrategyDefault   Strategy = "ACDS default"
	StrategyEarlyExit Strategy = "ACDS early exit"
	StrategyFractions Strategy = "Fraction List"
)

// Strategies lists all strategies in report order.
var Strategies = []Strategy{StrategyDefault, StrategyEarlyExit, StrategyFractions}

// Result is one measured (suite, strategy) pair.
type Result struct {
	Suite       string
	Strategy    Strategy
	N           int
	NsPerOp     int64
	AllocsPerOp int64
	Checksum    int32
}

// RunDefault sums ApplyReduction over every case in the suite.
func RunDefault(damage int32, s data.Suite) int32 {
	var output int32
	for _, c := range s.Cases {
		output += combat.ApplyReduction(damage, c.Modifiers)
	}
	return output
}

// RunEarlyExit sums ApplyReductionEarlyExit using each case's hint.
func RunEarlyExit(damage int32, s data.Suite) int32 {
	var output int32
	for _, c := range s.Cases {
		output += combat.ApplyReductionEarlyExit(damage, c.Modifiers, c.NonZero)
	}
	return output
}

// RunFractions sums ApplyReductionFractions over every case's fraction list.
func RunFractions(damage int32, s data.Suite) int32 {
	var output int32
	for _, c := range s.Cases {
		output += combat.ApplyReductionFractions(damage, c.Fractions)
	}
	return output
}

// runners maps each strategy to its suite function.
var runners = map[Strategy]func(int32, data.Suite) int32{
	StrategyDefault:   RunDefault,
	StrategyEarlyExit: RunEarlyExit,
	StrategyFractions: RunFractions,
}

// Run dispatches to the Run* function of the given strategy.
func Run(strategy Strategy, damage int32, s data.Suite) (int32, error) {
	fn, ok := runners[strategy]
	if !ok {
		return 0, fmt.Errorf("unknown strategy %q", strategy)
	}
	return fn(damage, s), nil
}

// Verify checks case by case that the early-exit strategy agrees with the
// default one. Suites are checked concurrently, at most workers at a time
// (workers <= 0 means no limit).
//
// The fraction strategy is not verified: custom suites may use arbitrary
// denominators that have no vector equivalent.
func Verify(ctx context.Context, damage int32, suites []data.Suite, workers int) error {
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for _, s := range suites {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i, c := range s.Cases {
				want := combat.ApplyReduction(damage, c.Modifiers)
				got := combat.ApplyReductionEarlyExit(damage, c.Modifiers, c.NonZero)
				if got != want {
					return fmt.Errorf("%w: suite %q case %d %s (non_zero %d): early exit %d, default %d",
						ErrMismatch, s.Name, i, c.Modifiers, c.NonZero, got, want)
				}
			}
			slog.Debug("suite verified", "suite", s.Name, "cases", len(s.Cases))
			return nil
		})
	}

	return g.Wait()
}

// Measure benchmarks every strategy on the suite with testing.Benchmark.
// It stops early if ctx is cancelled between strategies.
func Measure(ctx context.Context, damage int32, s data.Suite) ([]Result, error) {
	results := make([]Result, 0, len(Strategies))

	for _, strategy := range Strategies {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		fn, ok := runners[strategy]
		if !ok {
			return results, fmt.Errorf("unknown strategy %q", strategy)
		}
		checksum := fn(damage, s)

		br := testing.Benchmark(func(b *testing.B) {
			b.ReportAllocs()
			var sink int32
			for range b.N {
				sink += fn(damage, s)
			}
			_ = sink
		})

		r := Result{
			Suite:       s.Name,
			Strategy:    strategy,
			N:           br.N,
			NsPerOp:     br.NsPerOp(),
			AllocsPerOp: br.AllocsPerOp(),
			Checksum:    checksum,
		}
		slog.Info("benchmark",
			"suite", r.Suite,
			"strategy", string(r.Strategy),
			"ns_per_op", r.NsPerOp,
			"allocs_per_op", r.AllocsPerOp,
			"n", r.N)
		results = append(results, r)
	}

	return results, nil
}
