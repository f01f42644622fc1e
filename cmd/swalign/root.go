package main

import (
	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/swalign/internal/config"
	"github.com/katalvlaran/swalign/internal/logger"
)

// rootCommand builds the swalign command. Flags win over the config file and
// the environment, but only when given explicitly.
func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "swalign <input> <output>",
		Short:         "Aligns every pair of words in a list with Smith-Waterman",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := logger.Setup(cfg.Environment); err != nil {
				return errors.Wrap(err, "setup logger")
			}

			return run(ctx, args[0], args[1], cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringP("config", "c", "", "Config file path (YAML, optional)")
	flags.IntP("workers", "w", 0, "Alignment goroutines, 0 for one per CPU")
	flags.StringP("format", "f", "text", "Report format (text, jsonl)")
	flags.Int("match", 1, "Score for equal symbols")
	flags.Int("mismatch", -5, "Score for differing symbols")
	flags.Int("gap", -10, "Score for a gap")
	flags.Bool("skip-blank", false, "Drop empty input lines")
	flags.String("metrics-file", "", "Write Prometheus metrics to this textfile after the run")
	flags.String("env", "", "Logging environment (development, production)")
	flags.Bool("trace-pairs", false, "Log every aligned pair at debug level")

	return cmd
}

// loadConfig reads the config file (if any) and the environment, then
// applies the flags the user actually set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("match") {
		cfg.Scoring.Match, _ = flags.GetInt("match")
	}
	if flags.Changed("mismatch") {
		cfg.Scoring.Mismatch, _ = flags.GetInt("mismatch")
	}
	if flags.Changed("gap") {
		cfg.Scoring.Gap, _ = flags.GetInt("gap")
	}
	if flags.Changed("skip-blank") {
		cfg.SkipBlank, _ = flags.GetBool("skip-blank")
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile, _ = flags.GetString("metrics-file")
	}
	if flags.Changed("trace-pairs") {
		cfg.TracePairs, _ = flags.GetBool("trace-pairs")
	}
	if flags.Changed("env") {
		cfg.Environment, _ = flags.GetString("env")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}

	return cfg, nil
}
