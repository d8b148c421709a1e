package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// resetFlags restores the package-level flag state a test mutates.
func resetFlags(t *testing.T) {
	t.Helper()
	savedSeed, savedOutput, savedLevel := seed, outputPath, logLevel
	savedWorkers, savedPrefix, savedSolver, savedTimeout := workers, keyPrefix, solverKind, timeout
	t.Cleanup(func() {
		seed, outputPath, logLevel = savedSeed, savedOutput, savedLevel
		workers, keyPrefix, solverKind, timeout = savedWorkers, savedPrefix, savedSolver, savedTimeout
	})
}

func TestRunRejectsUnknownLogLevel(t *testing.T) {
	resetFlags(t)
	logLevel = "verbose"

	err := run(nil, []string{"1", "easy"})
	require.Error(t, err, "a log-level typo must fail fast, not run at the default level")
	require.Contains(t, err.Error(), "parse log level")
}

func TestRunRejectsNonNumericCount(t *testing.T) {
	resetFlags(t)
	logLevel = "error"

	err := run(nil, []string{"three", "easy"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse count")
}

func TestRunWritesSetToFile(t *testing.T) {
	resetFlags(t)
	logLevel = "error"
	seed = 42
	outputPath = filepath.Join(t.TempDir(), "puzzles", "set.json")

	require.NoError(t, run(nil, []string{"2", "easy"}))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var decoded map[string]struct {
		Q [9][9]uint8 `json:"q"`
		A [9][9]uint8 `json:"a"`
		D string      `json:"d"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	require.Contains(t, decoded, "sdku-v1-q1")
	require.Contains(t, decoded, "sdku-v1-q2")
	require.Equal(t, "easy", decoded["sdku-v1-q1"].D)
}
