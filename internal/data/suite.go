package data

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/udisondev/acds/internal/game/combat"
)

var (
	// ErrInvalidSuite is returned when a suite definition cannot be benchmarked.
	ErrInvalidSuite = errors.New("invalid suite")
	// ErrUnknownSuite is returned by SuiteByName for unregistered names.
	ErrUnknownSuite = errors.New("unknown suite")
)

// SuiteCase is one benchmark input: the ACDS vector, its early-exit hint
// and the equivalent fraction list for comparison.
type SuiteCase struct {
	Modifiers combat.Modifiers
	NonZero   uint32
	Fractions []combat.Fraction
}

// Suite is a named set of cases with a comparable modifier load.
type Suite struct {
	Name  string
	Cases []SuiteCase
}

// Validate checks that every case can be run by all three strategies.
// A hint below the true non-zero count would make the early-exit strategy
// skip slots, so it is rejected here rather than in the engine.
func (s Suite) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidSuite)
	}
	for i, c := range s.Cases {
		if actual := c.Modifiers.NonZero(); c.NonZero < actual {
			return fmt.Errorf("%w: suite %q case %d: non_zero %d < %d", ErrInvalidSuite, s.Name, i, c.NonZero, actual)
		}
		for j, f := range c.Fractions {
			if f.Denominator == 0 {
				return fmt.Errorf("%w: suite %q case %d fraction %d: zero denominator", ErrInvalidSuite, s.Name, i, j)
			}
		}
	}
	return nil
}

// suites is the registry of built-in suites in canonical order.
// Filled by LoadSuites() at startup.
var suites []Suite

// LoadSuites builds the built-in suites from suiteDefs.
func LoadSuites() error {
	loaded := make([]Suite, 0, len(suiteDefs))
	for i := range suiteDefs {
		s := convertSuiteDef(&suiteDefs[i])
		if err := s.Validate(); err != nil {
			return fmt.Errorf("built-in suite: %w", err)
		}
		loaded = append(loaded, s)
	}
	suites = loaded

	slog.Info("loaded benchmark suites", "count", len(suites))
	return nil
}

// Suites returns a copy of the built-in suites: Empty, Light, Medium, Heavy.
// Returns nil before LoadSuites.
func Suites() []Suite {
	return slices.Clone(suites)
}

// SuiteByName returns a built-in suite by name.
func SuiteByName(name string) (Suite, error) {
	for _, s := range suites {
		if s.Name == name {
			return s, nil
		}
	}
	return Suite{}, fmt.Errorf("%w: %q", ErrUnknownSuite, name)
}

func convertSuiteDef(def *suiteDef) Suite {
	s := Suite{
		Name:  def.name,
		Cases: make([]SuiteCase, 0, len(def.cases)),
	}
	for _, c := range def.cases {
		fractions := make([]combat.Fraction, 0, len(c.fractions))
		for _, f := range c.fractions {
			fractions = append(fractions, combat.Fraction{Numerator: f[0], Denominator: f[1]})
		}
		s.Cases = append(s.Cases, SuiteCase{
			Modifiers: c.modifiers,
			NonZero:   c.nonZero,
			Fractions: fractions,
		})
	}
	return s
}
