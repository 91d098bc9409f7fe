package data

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/acds/internal/game/combat"
)

// suiteFile is the YAML layout of a custom suites file:
//
//	suites:
//	  - name: Immunity
//	    cases:
//	      - modifiers: [0, 1, 0, 0, 0, 0, 0, 1]
//	        non_zero: 2              # optional, derived when omitted
//	        fractions: [[1, 4], [1, 1]] # optional, derived when omitted
type suiteFile struct {
	Suites []suiteFileEntry `yaml:"suites"`
}

type suiteFileEntry struct {
	Name  string          `yaml:"name"`
	Cases []suiteFileCase `yaml:"cases"`
}

type suiteFileCase struct {
	Modifiers []int     `yaml:"modifiers"`
	NonZero   *uint32   `yaml:"non_zero"`
	Fractions [][]int32 `yaml:"fractions"`
}

// LoadSuitesFile reads custom suites from a YAML file.
func LoadSuitesFile(path string) ([]Suite, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suites %s: %w", path, err)
	}

	out, err := ParseSuites(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing suites %s: %w", path, err)
	}
	return out, nil
}

// ParseSuites decodes and validates YAML suite definitions.
func ParseSuites(raw []byte) ([]Suite, error) {
	var file suiteFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}

	out := make([]Suite, 0, len(file.Suites))
	for _, entry := range file.Suites {
		s, err := convertSuiteFileEntry(entry)
		if err != nil {
			return nil, err
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func convertSuiteFileEntry(entry suiteFileEntry) (Suite, error) {
	s := Suite{
		Name:  entry.Name,
		Cases: make([]SuiteCase, 0, len(entry.Cases)),
	}

	for i, c := range entry.Cases {
		if len(c.Modifiers) > combat.SlotCount {
			return Suite{}, fmt.Errorf("%w: suite %q case %d: %d slots, max %d",
				ErrInvalidSuite, entry.Name, i, len(c.Modifiers), combat.SlotCount)
		}

		var m combat.Modifiers
		for slot, count := range c.Modifiers {
			if count < math.MinInt8 || count > math.MaxInt8 {
				return Suite{}, fmt.Errorf("%w: suite %q case %d slot %d: %d out of int8 range",
					ErrInvalidSuite, entry.Name, i, slot, count)
			}
			m[slot] = int8(count)
		}

		sc := SuiteCase{Modifiers: m, NonZero: m.NonZero()}
		if c.NonZero != nil {
			sc.NonZero = *c.NonZero
		}

		if c.Fractions == nil {
			// Vectors with negative slots have no fraction list; the
			// fraction strategy then runs on an empty list.
			if fractions, ok := m.Fractions(); ok {
				sc.Fractions = fractions
			}
		} else {
			for j, f := range c.Fractions {
				if len(f) != 2 {
					return Suite{}, fmt.Errorf("%w: suite %q case %d fraction %d: want [numerator, denominator]",
						ErrInvalidSuite, entry.Name, i, j)
				}
				sc.Fractions = append(sc.Fractions, combat.Fraction{Numerator: f[0], Denominator: f[1]})
			}
		}

		s.Cases = append(s.Cases, sc)
	}
	return s, nil
}
