package affinity

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/nvandessel/affinity/internal/logging"
	"github.com/nvandessel/affinity/internal/normalize"
	"golang.org/x/sync/errgroup"
)

// Pair is one comparison in a batch.
type Pair struct {
	Name1 string `json:"name1" yaml:"name1"`
	Name2 string `json:"name2" yaml:"name2"`
}

// Result is the outcome of scoring one Pair. Err is non-nil, typically an
// *InvalidNameError, when the pair could not be scored.
type Result struct {
	Pair
	Breakdown Breakdown
	Err       error
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithCacheSize memoizes up to n scored pairs. Zero disables the cache.
func WithCacheSize(n int) Option {
	return func(s *Scorer) {
		s.cacheSize = n
	}
}

// WithLogger sets the logger used for cache and trace output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scorer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Scorer computes affinity quotients with optional memoization. The
// quotient is referentially transparent, so cached results are always
// identical to fresh ones. A Scorer is safe for concurrent use.
type Scorer struct {
	cacheSize int
	cache     *lru.Cache[pairKey, Breakdown]
	logger    *slog.Logger
}

// pairKey orders the normalized names so both argument orders share an entry.
type pairKey struct {
	lo, hi normalize.Name
}

func newPairKey(a, b normalize.Name) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// NewScorer creates a Scorer. A negative cache size is an error.
func NewScorer(opts ...Option) (*Scorer, error) {
	s := &Scorer{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(s)
	}

	if s.cacheSize < 0 {
		return nil, fmt.Errorf("cache size must be non-negative, got %d", s.cacheSize)
	}
	if s.cacheSize > 0 {
		cache, err := lru.New[pairKey, Breakdown](s.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating score cache: %w", err)
		}
		s.cache = cache
	}

	return s, nil
}

// Score returns the breakdown for name1 and name2 with the same contract as
// QuotientWithBreakdown.
func (s *Scorer) Score(name1, name2 string) (Breakdown, error) {
	a, b, err := normalizePair(name1, name2)
	if err != nil {
		s.logger.Debug("rejected name pair", "error", err)
		return Breakdown{}, err
	}

	key := newPairKey(a, b)
	if s.cache != nil {
		if bd, ok := s.cache.Get(key); ok {
			s.logger.Debug("score cache hit", "name1", a, "name2", b)
			return bd, nil
		}
	}

	bd := compute(a, b)
	s.logger.Log(context.Background(), logging.LevelTrace, "scored pair",
		"name1", a, "name2", b,
		"s", bd.S, "l", bd.L, "p", bd.P, "n", bd.N, "b", bd.B, "final", bd.Final)

	if s.cache != nil {
		s.cache.Add(key, bd)
	}
	return bd, nil
}

// ScoreBatch scores pairs with at most workers running at once. Results
// keep the order of pairs. A pair that fails validation is reported in its
// Result and does not stop the batch. If ctx is cancelled, no new pairs are
// started and ctx.Err() is returned alongside the partial results.
func (s *Scorer) ScoreBatch(ctx context.Context, pairs []Pair, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(pairs))
	var g errgroup.Group
	g.SetLimit(workers)

	for i, p := range pairs {
		i, p := i, p
		if err := ctx.Err(); err != nil {
			_ = g.Wait()
			return results, err
		}
		g.Go(func() error {
			bd, err := s.Score(p.Name1, p.Name2)
			results[i] = Result{Pair: p, Breakdown: bd, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	s.logger.Debug("batch scored", "pairs", len(pairs), "workers", workers)
	return results, ctx.Err()
}
