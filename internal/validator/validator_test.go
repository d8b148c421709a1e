package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/domain"
)

var complete = domain.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestValidateCompleteGrid(t *testing.T) {
	ctx := context.Background()
	ok, conf, err := New().Validate(ctx, &complete)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, conf)
}

func TestValidateReportsConflicts(t *testing.T) {
	ctx := context.Background()
	g := complete
	g[0][1] = 5 // duplicates (0,0) in row 0 and box (0,0)
	ok, conf, err := New().Validate(ctx, &g)
	require.NoError(t, err)
	require.False(t, ok)
	require.NotEmpty(t, conf)
}

func TestValidateIgnoresEmptyCells(t *testing.T) {
	ctx := context.Background()
	g := complete
	g[4][4] = 0
	g[8][0] = 0
	ok, conf, err := New().Validate(ctx, &g)
	require.NoError(t, err)
	require.True(t, ok, "conflicts: %v", conf)
}

func TestCompleteChecksEveryUnit(t *testing.T) {
	ctx := context.Background()
	v := New()

	ok, err := v.Complete(ctx, &complete)
	require.NoError(t, err)
	require.True(t, ok)

	withHole := complete
	withHole[4][4] = 0
	ok, err = v.Complete(ctx, &withHole)
	require.NoError(t, err)
	require.False(t, ok, "a grid with an empty cell is not complete")

	var empty domain.Grid
	ok, err = v.Complete(ctx, &empty)
	require.NoError(t, err)
	require.False(t, ok)
}
