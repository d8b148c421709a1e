package generator

import (
	"context"
	"math/rand"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// Complete returns a full valid grid. The three diagonal boxes share no
// row, column, or box with each other, so each is seeded with an
// independent random permutation of 1..9; backtracking then fills the
// remaining cells. A completion always exists for such a seeding, so
// the call only fails on context cancellation.
func (g *UniqueGenerator) Complete(ctx context.Context, rng *rand.Rand) (domain.Grid, ports.Stats, error) {
	var grid domain.Grid
	for k := 0; k < 9; k += 3 {
		perm := rng.Perm(9)
		for i, p := range perm {
			grid[k+i/3][k+i%3] = uint8(p + 1)
		}
	}
	solved, st, err := g.Solver.Solve(ctx, &grid)
	if err != nil {
		return domain.Grid{}, st, err
	}
	if !solved {
		return domain.Grid{}, st, ErrNoCompletion
	}
	return grid, st, nil
}
