package solver

import "svw.info/sudokugen/internal/domain"

// BacktrackingSolver is a straightforward recursive solver.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// --- helpers used by Solve/Count (in other files) ---

// isValid reports whether v can be placed at (r,c) without repeating in
// the row, the column, or the containing 3x3 box.
func isValid(g *domain.Grid, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// findEmpty returns the first empty cell in row-major order.
func findEmpty(g *domain.Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
