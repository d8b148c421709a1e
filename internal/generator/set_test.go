package generator

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/solver"
	"svw.info/sudokugen/internal/validator"
)

func newTestBuilder(seed int64) *SetBuilder {
	g := NewUniqueGenerator(solver.NewBacktrackingSolver())
	return NewSetBuilder(g, seed)
}

func TestBuildHardSet(t *testing.T) {
	ctx := context.Background()
	s := solver.NewBacktrackingSolver()
	v := validator.New()
	b := newTestBuilder(1)

	set, st, err := b.Build(ctx, 3, domain.Hard)
	require.NoError(t, err)
	require.Equal(t, 3, set.Len())
	require.Equal(t, []string{"sdku-v1-q1", "sdku-v1-q2", "sdku-v1-q3"}, set.Keys())
	require.Greater(t, st.Nodes, 0)

	for _, key := range set.Keys() {
		p, ok := set.Get(key)
		require.True(t, ok)
		require.Equal(t, domain.Hard, p.Difficulty)

		clues := p.Question.Clues()
		require.GreaterOrEqual(t, clues, 25, "%s below the hard band", key)
		require.LessOrEqual(t, clues, 30, "%s above the hard band", key)

		complete, err := v.Complete(ctx, &p.Answer)
		require.NoError(t, err)
		require.True(t, complete, "%s answer is not a valid full grid", key)

		n, _, err := s.Count(ctx, p.Question, 2)
		require.NoError(t, err)
		require.Equal(t, 1, n, "%s question is not uniquely solvable", key)
	}
}

func TestBuildOrderIsIndexOrder(t *testing.T) {
	// More workers than puzzles plus uneven per-puzzle cost: keys must
	// still come out in request order, whatever order workers finish.
	ctx := context.Background()
	b := newTestBuilder(21)
	b.Workers = 8

	set, _, err := b.Build(ctx, 5, domain.Easy)
	require.NoError(t, err)
	want := make([]string, 0, 5)
	for i := 1; i <= 5; i++ {
		want = append(want, fmt.Sprintf("sdku-v1-q%d", i))
	}
	require.Equal(t, want, set.Keys())
}

func TestBuildIsSeedReproducible(t *testing.T) {
	ctx := context.Background()

	first, _, err := newTestBuilder(77).Build(ctx, 2, domain.Medium)
	require.NoError(t, err)
	second, _, err := newTestBuilder(77).Build(ctx, 2, domain.Medium)
	require.NoError(t, err)

	require.Equal(t, first.Keys(), second.Keys())
	for _, key := range first.Keys() {
		a, _ := first.Get(key)
		b, _ := second.Get(key)
		require.Equal(t, a, b, "same seed must reproduce %s", key)
	}
}

func TestBuildCustomPrefix(t *testing.T) {
	ctx := context.Background()
	b := newTestBuilder(13)
	b.Prefix = "daily"

	set, _, err := b.Build(ctx, 1, domain.Easy)
	require.NoError(t, err)
	require.Equal(t, []string{"daily-q1"}, set.Keys())
}

func TestBuildHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := newTestBuilder(1).Build(ctx, 3, domain.Medium)
	require.Error(t, err)
}
