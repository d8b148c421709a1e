package generator

import "errors"

var (
	// ErrCarveStalled indicates the carve loop hit its retry ceiling
	// before reaching the target clue count. The caller can retry with
	// a fresh complete grid.
	ErrCarveStalled = errors.New("generator: carving stalled before reaching its clue target")
	// ErrNoCompletion indicates backtracking failed to complete a seeded
	// grid. With only the diagonal boxes seeded this cannot happen; it
	// guards against solver misconfiguration.
	ErrNoCompletion = errors.New("generator: could not complete seeded grid")
)
