package validator

import (
	"context"

	"svw.info/sudokugen/internal/domain"
)

// fullMask has bits 1..9 set: the signature of a unit holding each
// value exactly once.
const fullMask = 0x3fe

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate checks the partial-grid invariant: no value repeats within a
// row, column, or box. Empty cells are ignored. The returned conflicts
// name the cells whose value duplicates an earlier one in some unit.
func (v *FastValidator) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					val := g[r][c]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}

// Complete reports whether every row, column, and box of g is exactly
// the set 1..9, i.e. g is a finished valid grid.
func (v *FastValidator) Complete(ctx context.Context, g *domain.Grid) (bool, error) {
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			m |= 1 << g[r][c]
		}
		if m != fullMask {
			return false, nil
		}
	}
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			m |= 1 << g[r][c]
		}
		if m != fullMask {
			return false, nil
		}
	}
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					m |= 1 << g[br*3+dr][bc*3+dc]
				}
			}
			if m != fullMask {
				return false, nil
			}
		}
	}
	return true, nil
}
