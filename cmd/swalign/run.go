package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/swalign/internal/config"
	"github.com/katalvlaran/swalign/internal/logger"
	"github.com/katalvlaran/swalign/internal/metrics"
	"github.com/katalvlaran/swalign/pipeline"
	"github.com/katalvlaran/swalign/report"
	"github.com/katalvlaran/swalign/wordlist"
)

// run aligns every pair of words from input and writes the report to output.
// Nothing is written to output unless the input was read and every pair was
// reported.
func run(ctx context.Context, input, output string, cfg *config.Config) error {
	ctx = logger.WithFields(ctx, zap.String("run_id", uuid.NewString()))
	started := time.Now()

	newWriter, err := report.Lookup(cfg.Format)
	if err != nil {
		return errors.Wrap(err, "report format")
	}

	var readOpts []wordlist.Option
	if cfg.SkipBlank {
		readOpts = append(readOpts, wordlist.WithSkipBlank())
	}
	words, err := wordlist.ReadFile(input, readOpts...)
	if err != nil {
		return errors.Wrapf(err, "read input %q", input)
	}
	words = wordlist.Sorted(words)
	logger.Info(ctx, "input loaded",
		zap.String("input", input),
		zap.Int("words", len(words)),
		zap.Int("pairs", wordlist.PairCount(len(words))),
		zap.Stringer("scheme", cfg.Scheme()),
	)

	m := metrics.New()
	pcfg := pipeline.Config{
		Workers: cfg.Workers,
		Scheme:  cfg.Scheme(),
		OnAlign: m.Observe,
	}
	if cfg.TracePairs {
		pcfg.OnAlign = func(pr pipeline.PairResult, d time.Duration) {
			m.Observe(pr, d)
			logger.Debug(ctx, "pair aligned",
				zap.Int("index", pr.Index),
				zap.Int("score", pr.Result.Score),
				zap.Duration("took", d),
			)
		}
	}

	err = writeAtomic(output, func(f *os.File) error {
		w := newWriter(f)
		err := pipeline.Run(ctx, words, pcfg, func(pr pipeline.PairResult) error {
			return w.Write(pr.A, pr.B, pr.Result)
		})
		if err != nil {
			return errors.Wrap(err, "align pairs")
		}

		if err := w.Flush(); err != nil {
			return errors.Wrapf(err, "write output %q", output)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			return errors.Wrapf(err, "write metrics %q", cfg.MetricsFile)
		}
	}

	logger.Info(ctx, "run finished",
		zap.String("output", output),
		zap.String("format", cfg.Format),
		zap.Duration("took", time.Since(started)),
	)

	return nil
}

// writeAtomic fills a temp file next to path with fill and renames it over
// path on success. On failure the temp file is removed and path is untouched.
func writeAtomic(path string, fill func(f *os.File) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "create output %q", path)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err := fill(f); err != nil {
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		return errors.Wrapf(err, "chmod output %q", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close output %q", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "rename output %q", path)
	}

	return nil
}
