package generator

import "svw.info/sudokugen/internal/ports"

// UniqueGenerator builds complete grids and carves them into puzzles
// with exactly one solution, using the provided Solver as the
// uniqueness oracle.
type UniqueGenerator struct {
	Solver ports.Solver
}

// NewUniqueGenerator wires a generator that uses the given solver for
// grid completion and uniqueness checks.
func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}
