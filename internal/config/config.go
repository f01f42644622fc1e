// Package config loads swalign settings from an optional YAML file and the
// environment.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/katalvlaran/swalign/scoring"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment selects the logger flavour ("development" or "production").
	Environment string `env:"SWALIGN_ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Workers is the number of alignment goroutines; 0 means one per CPU.
	Workers int `env:"SWALIGN_WORKERS" env-default:"0" yaml:"workers"`

	// Format names the report writer ("text" or "jsonl").
	Format string `env:"SWALIGN_FORMAT" env-default:"text" yaml:"format"`

	// SkipBlank drops empty input lines instead of aligning them as empty words.
	SkipBlank bool `env:"SWALIGN_SKIP_BLANK" env-default:"false" yaml:"skipBlank"`

	// TracePairs logs one debug entry per aligned pair.
	TracePairs bool `env:"SWALIGN_TRACE_PAIRS" env-default:"false" yaml:"tracePairs"`

	// MetricsFile, when set, receives a Prometheus textfile after the run.
	MetricsFile string `env:"SWALIGN_METRICS_FILE" yaml:"metricsFile"`

	// Scoring holds the alignment scores.
	Scoring struct {
		// Match is added for equal symbols.
		Match int `env:"SWALIGN_MATCH" env-default:"1" yaml:"match"`
		// Mismatch is added for differing symbols.
		Mismatch int `env:"SWALIGN_MISMATCH" env-default:"-5" yaml:"mismatch"`
		// Gap is added for a symbol aligned against nothing.
		Gap int `env:"SWALIGN_GAP" env-default:"-10" yaml:"gap"`
	} `yaml:"scoring"`
}

// Load reads the YAML file at configPath and then the environment, which
// wins over the file. With an empty path only the environment and the
// defaults are used.
func Load(configPath string) (*Config, error) {
	var cfg Config
	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// Scheme converts the scoring section into a scoring.Scheme.
func (c *Config) Scheme() scoring.Scheme {
	return scoring.Scheme{
		Match:    c.Scoring.Match,
		Mismatch: c.Scoring.Mismatch,
		Gap:      c.Scoring.Gap,
	}
}

// Validate checks the settings that would otherwise fail mid-run.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must be >= 0, got %d", c.Workers)
	}

	return c.Scheme().Validate()
}
