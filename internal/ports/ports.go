package ports

import (
	"context"
	"io"
	"math/rand"
	"time"

	"svw.info/sudokugen/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver fills grids and counts their completions.
type Solver interface {
	// Solve completes g in place, returning false when no completion
	// exists. False is the normal backtrack signal, not an error.
	Solve(ctx context.Context, g *domain.Grid) (bool, Stats, error)
	// Count returns how many completions g has, exploring a private
	// copy. A positive limit stops the search once that many are
	// found; 0 counts exhaustively.
	Count(ctx context.Context, g domain.Grid, limit int) (int, Stats, error)
}

// Generator produces complete grids and carves questions out of them.
// Randomness is injected so fixed seeds reproduce fixed puzzles.
type Generator interface {
	Complete(ctx context.Context, rng *rand.Rand) (domain.Grid, Stats, error)
	Carve(ctx context.Context, rng *rand.Rand, full domain.Grid, d domain.Difficulty) (domain.Grid, Stats, error)
}

// Builder assembles whole puzzle sets at a target difficulty.
type Builder interface {
	Build(ctx context.Context, count int, d domain.Difficulty) (*domain.Set, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	// Validate reports whether the partial-grid invariant holds, with
	// the conflicting cells when it does not.
	Validate(ctx context.Context, g *domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
	// Complete reports whether every row, column and box is exactly
	// the set 1..9.
	Complete(ctx context.Context, g *domain.Grid) (bool, error)
}

// Exporter serializes a puzzle set for external consumers.
type Exporter interface {
	Export(ctx context.Context, w io.Writer, s *domain.Set) error
}
