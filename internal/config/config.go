package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Bench holds all configuration for the ACDS benchmark tool.
// Precedence: defaults < YAML file < ACDS_* environment variables.
type Bench struct {
	LogLevel string `yaml:"log_level" env:"ACDS_LOG_LEVEL"` // debug|info|warn|error

	// Damage value every suite and curve row is applied to.
	Damage int32 `yaml:"damage" env:"ACDS_DAMAGE"`

	// Nominal curve range for the report
	NominalMin int8 `yaml:"nominal_min" env:"ACDS_NOMINAL_MIN"`
	NominalMax int8 `yaml:"nominal_max" env:"ACDS_NOMINAL_MAX"`

	// Suites
	Suites        []string `yaml:"suites" env:"ACDS_SUITES" envSeparator:","` // empty = all
	SuitesFile    string   `yaml:"suites_file" env:"ACDS_SUITES_FILE"`         // optional custom suites
	VerifyWorkers int      `yaml:"verify_workers" env:"ACDS_VERIFY_WORKERS"`
	SkipMeasure   bool     `yaml:"skip_measure" env:"ACDS_SKIP_MEASURE"`

	// Output
	ReportPath string `yaml:"report_path" env:"ACDS_REPORT_PATH"` // empty = no report
}

// DefaultBench returns Bench config with sensible defaults.
func DefaultBench() Bench {
	return Bench{
		LogLevel:      "info",
		Damage:        1000,
		NominalMin:    -80,
		NominalMax:    80,
		VerifyWorkers: 4,
	}
}

// LoadBench loads benchmark config from a YAML file, then applies
// environment overrides. If the file doesn't exist, defaults are used.
func LoadBench(path string) (Bench, error) {
	cfg := DefaultBench()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Bench) Validate() error {
	if c.NominalMin > c.NominalMax {
		return fmt.Errorf("nominal_min %d > nominal_max %d", c.NominalMin, c.NominalMax)
	}
	if c.VerifyWorkers < 0 {
		return errors.New("verify_workers must be >= 0")
	}
	return nil
}
