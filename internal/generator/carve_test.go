package generator

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/solver"
)

func TestCarveKeepsUniquenessWithinBand(t *testing.T) {
	ctx := context.Background()
	s := solver.NewBacktrackingSolver()
	g := NewUniqueGenerator(s)

	bands := map[domain.Difficulty][2]int{
		domain.Easy:   {45, 50},
		domain.Medium: {35, 40},
		domain.Hard:   {25, 30},
	}
	for d, band := range bands {
		t.Run(d.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(99))
			full, _, err := g.Complete(ctx, rng)
			require.NoError(t, err)

			question, _, err := g.Carve(ctx, rng, full, d)
			require.NoError(t, err)

			clues := question.Clues()
			require.GreaterOrEqual(t, clues, band[0])
			require.LessOrEqual(t, clues, band[1])

			n, _, err := s.Count(ctx, question, 2)
			require.NoError(t, err)
			require.Equal(t, 1, n, "carved puzzle must stay uniquely solvable")

			// Every remaining clue comes from the source grid.
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					if question[r][c] != 0 {
						require.Equal(t, full[r][c], question[r][c])
					}
				}
			}
		})
	}
}

func TestCarvedPuzzleSolvesBackToAnswer(t *testing.T) {
	ctx := context.Background()
	s := solver.NewBacktrackingSolver()
	g := NewUniqueGenerator(s)

	rng := rand.New(rand.NewSource(3))
	full, _, err := g.Complete(ctx, rng)
	require.NoError(t, err)
	question, _, err := g.Carve(ctx, rng, full, domain.Medium)
	require.NoError(t, err)

	// The single completion of the question is the grid it was carved
	// from, so any solver must land on it.
	solvedGrid := question
	solved, _, err := s.Solve(ctx, &solvedGrid)
	require.NoError(t, err)
	require.True(t, solved)
	require.Equal(t, full, solvedGrid)
}

func TestCarveHonorsCancellation(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	g := NewUniqueGenerator(s)

	rng := rand.New(rand.NewSource(5))
	full, _, err := g.Complete(context.Background(), rng)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = g.Carve(ctx, rng, full, domain.Hard)
	require.ErrorIs(t, err, context.Canceled)
}
