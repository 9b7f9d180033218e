package affinity

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/nvandessel/affinity/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScorer(t *testing.T) {
	s, err := NewScorer()
	require.NoError(t, err)
	assert.Nil(t, s.cache)

	s, err = NewScorer(WithCacheSize(8))
	require.NoError(t, err)
	assert.NotNil(t, s.cache)

	_, err = NewScorer(WithCacheSize(-1))
	assert.Error(t, err)
}

func TestScorer_MatchesQuotient(t *testing.T) {
	s, err := NewScorer(WithCacheSize(16))
	require.NoError(t, err)

	for _, x := range names {
		for _, y := range names {
			want, err := QuotientWithBreakdown(x, y)
			require.NoError(t, err)

			// Twice: the second call is served from the cache.
			for i := 0; i < 2; i++ {
				got, err := s.Score(x, y)
				require.NoError(t, err)
				require.Equal(t, want, got, "%q vs %q", x, y)
			}
		}
	}
}

func TestScorer_CacheSharedAcrossArgumentOrder(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewScorer(WithCacheSize(4), WithLogger(logging.NewLogger("debug", &buf)))
	require.NoError(t, err)

	_, err = s.Score("Alice", "Bob")
	require.NoError(t, err)
	assert.Equal(t, 1, s.cache.Len())

	_, err = s.Score("bob", "ALICE")
	require.NoError(t, err)
	assert.Equal(t, 1, s.cache.Len())
	assert.Contains(t, buf.String(), "score cache hit")
}

func TestScorer_InvalidName(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewScorer(WithCacheSize(4), WithLogger(logging.NewLogger("debug", &buf)))
	require.NoError(t, err)

	_, err = s.Score("Anna", "!!!")
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.Equal(t, 0, s.cache.Len())
	assert.Contains(t, buf.String(), "rejected name pair")
}

func TestScorer_TraceLogsBreakdown(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewScorer(WithLogger(logging.NewLogger("trace", &buf)))
	require.NoError(t, err)

	_, err = s.Score("Anna", "Bob")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "level=TRACE")
	assert.Contains(t, buf.String(), "final=51.4")
}

func TestScorer_ConcurrentUse(t *testing.T) {
	s, err := NewScorer(WithCacheSize(8))
	require.NoError(t, err)

	want, err := QuotientWithBreakdown("Catherine", "Katharina")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := s.Score("Catherine", "Katharina")
			if err != nil {
				errs <- err
				return
			}
			if got != want {
				errs <- fmt.Errorf("got %+v, want %+v", got, want)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestScorer_ScoreBatch(t *testing.T) {
	s, err := NewScorer(WithCacheSize(16))
	require.NoError(t, err)

	pairs := []Pair{
		{Name1: "Alice", Name2: "Anna"},
		{Name1: "123", Name2: "Anna"},
		{Name1: "Anna", Name2: "Bob"},
		{Name1: "Bob", Name2: "Anna"},
	}

	results, err := s.ScoreBatch(context.Background(), pairs, 3)
	require.NoError(t, err)
	require.Len(t, results, len(pairs))

	for i, r := range results {
		assert.Equal(t, pairs[i], r.Pair)
	}
	assert.NoError(t, results[0].Err)
	assert.Equal(t, 69.4, results[0].Breakdown.Final)
	assert.ErrorIs(t, results[1].Err, ErrInvalidName)
	assert.Equal(t, 51.4, results[2].Breakdown.Final)
	assert.Equal(t, results[2].Breakdown, results[3].Breakdown)
}

func TestScorer_ScoreBatch_ZeroWorkers(t *testing.T) {
	s, err := NewScorer()
	require.NoError(t, err)

	results, err := s.ScoreBatch(context.Background(), []Pair{{Name1: "Ada", Name2: "Ava"}}, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 100.0, results[0].Breakdown.B)
}

func TestScorer_ScoreBatch_Cancelled(t *testing.T) {
	s, err := NewScorer()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pairs := make([]Pair, 10)
	for i := range pairs {
		pairs[i] = Pair{Name1: "Anna", Name2: strings.Repeat("b", i+1)}
	}

	results, err := s.ScoreBatch(ctx, pairs, 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, results, len(pairs))
	assert.Equal(t, Breakdown{}, results[0].Breakdown)
}
