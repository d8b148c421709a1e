package generator

import (
	"context"
	"fmt"
	"math/rand"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// carveAttemptLimit bounds the number of rejected removals before Carve
// gives up with ErrCarveStalled. Near low clue counts most removals
// break uniqueness, so an explicit ceiling turns a potential hang into
// a recoverable failure the caller can retry on a fresh grid.
const carveAttemptLimit = 1000

// clueRange maps a difficulty to its clue-count band.
func clueRange(d domain.Difficulty) (lo, hi int) {
	switch d {
	case domain.Easy:
		return 45, 50
	case domain.Medium:
		return 35, 40
	default:
		return 25, 30 // Hard
	}
}

// Carve removes cells from a copy of full until only a clue count drawn
// from the difficulty's band remains, keeping every intermediate grid
// uniquely solvable. Removals that would admit a second solution are
// rolled back and retried elsewhere. The input grid is never mutated;
// the returned question's single completion is full itself.
func (g *UniqueGenerator) Carve(ctx context.Context, rng *rand.Rand, full domain.Grid, d domain.Difficulty) (domain.Grid, ports.Stats, error) {
	var st ports.Stats
	lo, hi := clueRange(d)
	clues := lo + rng.Intn(hi-lo+1)
	remove := 81 - clues

	grid := full // value copy, full stays intact
	rejected := 0
	for remove > 0 {
		if err := ctx.Err(); err != nil {
			return domain.Grid{}, st, err
		}
		r, c := rng.Intn(9), rng.Intn(9)
		if grid[r][c] == 0 {
			continue
		}
		old := grid[r][c]
		grid[r][c] = 0
		n, cst, err := g.Solver.Count(ctx, grid, 2)
		st.Nodes += cst.Nodes
		st.Duration += cst.Duration
		if err != nil {
			return domain.Grid{}, st, err
		}
		if n != 1 {
			grid[r][c] = old
			rejected++
			if rejected >= carveAttemptLimit {
				return domain.Grid{}, st, fmt.Errorf("%w: %d removals left after %d rejections", ErrCarveStalled, remove, rejected)
			}
			continue
		}
		remove--
	}
	return grid, st, nil
}
