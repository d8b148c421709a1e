package solver

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// Count explores every completion of g and returns how many exist.
// The grid is received by value, so the caller's copy is never touched.
// A positive limit stops the search as soon as that many completions
// are found; uniqueness checks pass 2 and avoid enumerating the full
// search tree. Limit 0 counts exhaustively.
func (s *BacktrackingSolver) Count(ctx context.Context, g domain.Grid, limit int) (int, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return true // stop search
		}
		r, c, ok := findEmpty(&g)
		if !ok {
			// A full assignment is one solution, not a branch point.
			count++
			return limit > 0 && count >= limit
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if isValid(&g, r, c, v) {
				g[r][c] = v
				if dfs() {
					return true
				}
				g[r][c] = 0
			}
		}
		return false
	}
	_ = dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return count, st, err
	}
	return count, st, nil
}
