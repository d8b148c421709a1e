package solver

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// Solve fills g in place by depth-first search over the empty cells in
// row-major order, trying candidates 1..9 ascending. It returns false
// when the partial assignment has no completion; an already complete
// grid returns true untouched.
func (s *BacktrackingSolver) Solve(ctx context.Context, g *domain.Grid) (bool, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(g)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if isValid(g, r, c, v) {
				g[r][c] = v
				if dfs() {
					return true
				}
				g[r][c] = 0
			}
		}
		return false
	}
	solved := dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	return solved, st, nil
}
