package domain

import "errors"

var (
	// ErrInvalidCount indicates a non-positive puzzle count was requested.
	ErrInvalidCount = errors.New("domain: puzzle count must be positive")
	// ErrUnknownDifficulty indicates a label outside easy/medium/hard.
	ErrUnknownDifficulty = errors.New("domain: unknown difficulty")
	// ErrDuplicateKey indicates a set already holds the given key.
	ErrDuplicateKey = errors.New("domain: duplicate puzzle key")
)
