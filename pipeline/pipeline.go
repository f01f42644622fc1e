package pipeline

import (
	"context"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/swalign/scoring"
	"github.com/katalvlaran/swalign/smithwaterman"
	"github.com/katalvlaran/swalign/wordlist"
)

// Config controls a run.
type Config struct {
	Workers int            // number of alignment goroutines; <1 means runtime.NumCPU()
	Scheme  scoring.Scheme // zero value means scoring.DefaultScheme()

	// OnAlign, if set, is called from worker goroutines after each pair is
	// aligned, with the time the alignment took. It must be safe for
	// concurrent use.
	OnAlign func(PairResult, time.Duration)
}

// PairResult is one aligned pair.
type PairResult struct {
	wordlist.Pair
	Result smithwaterman.Result
}

// Run aligns every (i<j) pair of words and calls visit once per pair, in
// pair-index order, from a single goroutine.
// It returns the first error from visit, the scheme, or ctx.
func Run(ctx context.Context, words []string, cfg Config, visit func(PairResult) error) error {
	cfg = normalize(cfg)
	if err := cfg.Scheme.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if wordlist.PairCount(len(words)) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan wordlist.Pair, cfg.Workers*2)
	results := make(chan PairResult, cfg.Workers*2)

	// Producer
	g.Go(func() error {
		defer close(jobs)

		return wordlist.EachPair(words, func(p wordlist.Pair) error {
			select {
			case jobs <- p:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	})

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Workers)
	for w := 0; w < cfg.Workers; w++ {
		g.Go(func() error {
			defer wg.Done()
			for p := range jobs {
				start := time.Now()
				res, err := smithwaterman.AlignWith(p.A, p.B, cfg.Scheme)
				if err != nil {
					return err
				}
				pr := PairResult{Pair: p, Result: res}
				if cfg.OnAlign != nil {
					cfg.OnAlign(pr, time.Since(start))
				}
				select {
				case results <- pr:
				case <-gctx.Done():
					return gctx.Err()
				}
			}

			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector: hold out-of-order results until their turn comes.
	g.Go(func() error {
		pending := make(map[int]PairResult, cfg.Workers*2)
		next := 0
		for pr := range results {
			pending[pr.Index] = pr
			for {
				ready, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				if err := visit(ready); err != nil {
					return err
				}
				next++
			}
		}

		return gctx.Err()
	})

	return g.Wait()
}

// Collect runs the pipeline and returns all results in pair order.
func Collect(ctx context.Context, words []string, cfg Config) ([]PairResult, error) {
	out := make([]PairResult, 0, wordlist.PairCount(len(words)))
	err := Run(ctx, words, cfg, func(pr PairResult) error {
		out = append(out, pr)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func normalize(cfg Config) Config {
	if cfg.Workers < 1 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Scheme == (scoring.Scheme{}) {
		cfg.Scheme = scoring.DefaultScheme()
	}

	return cfg
}
