package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/traypaint/internal/model"
)

func TestCalculateSpacing_Back(t *testing.T) {
	sp, warnings, err := CalculateSpacing(model.DefaultJob().Grid, model.SideBack)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.InDelta(t, 14.5/3.0, sp.X, eps)
	assert.InDelta(t, 5.625, sp.Y, eps)
	assert.Equal(t, 5, sp.Sweeps)
	assert.Equal(t, 4, sp.Steps)
}

func TestCalculateSpacing_FrontAndRightMatchBack(t *testing.T) {
	grid := model.DefaultJob().Grid
	back, _, err := CalculateSpacing(grid, model.SideBack)
	require.NoError(t, err)

	for _, side := range []model.Side{model.SideFront, model.SideRight} {
		sp, _, err := CalculateSpacing(grid, side)
		require.NoError(t, err)
		assert.Equal(t, back, sp, "%s side spacing", side)
	}
}

func TestCalculateSpacing_LeftSwapsAxes(t *testing.T) {
	sp, _, err := CalculateSpacing(model.DefaultJob().Grid, model.SideLeft)
	require.NoError(t, err)

	// 5 rows across the 18in width, 4 columns along the 26in height.
	assert.InDelta(t, 14.5/4.0, sp.X, eps)
	assert.InDelta(t, 22.5/3.0, sp.Y, eps)
	assert.Equal(t, 5, sp.Sweeps)
	assert.Equal(t, 4, sp.Steps)
}

func TestCalculateSpacing_SingleCountIsZero(t *testing.T) {
	grid := model.GridConfig{Columns: 1, Rows: 1, TrayWidth: 18, TrayHeight: 26, ItemSize: 3, Padding: 0.5}
	for _, side := range []model.Side{model.SideBack, model.SideRight, model.SideFront, model.SideLeft} {
		sp, warnings, err := CalculateSpacing(grid, side)
		require.NoError(t, err)
		assert.Equal(t, 0.0, sp.X)
		assert.Equal(t, 0.0, sp.Y)
		assert.Empty(t, warnings)
	}
}

func TestCalculateSpacing_InvalidGrid(t *testing.T) {
	tests := []model.GridConfig{
		{Columns: 0, Rows: 5, TrayWidth: 18, TrayHeight: 26},
		{Columns: 4, Rows: 0, TrayWidth: 18, TrayHeight: 26},
		{Columns: 4, Rows: 5, TrayWidth: 0, TrayHeight: 26},
	}
	for _, grid := range tests {
		_, _, err := CalculateSpacing(grid, model.SideBack)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidGridConfig), "got %v", err)
	}
}

func TestCalculateSpacing_UnknownSide(t *testing.T) {
	for _, side := range []model.Side{model.Side(-1), model.Side(4), model.Side(9)} {
		_, _, err := CalculateSpacing(model.DefaultJob().Grid, side)
		require.Error(t, err, "side %d", int(side))
		assert.True(t, errors.Is(err, model.ErrUnknownSide))
		assert.False(t, side.Valid())
	}
}

func TestCalculateSpacing_DegenerateWarnings(t *testing.T) {
	grid := model.GridConfig{Columns: 3, Rows: 2, TrayWidth: 4, TrayHeight: 3.5, ItemSize: 3, Padding: 1}
	sp, warnings, err := CalculateSpacing(grid, model.SideBack)
	require.NoError(t, err, "degenerate spacing is a warning, not an error")

	assert.InDelta(t, 0.0, sp.X, eps)
	assert.InDelta(t, -0.5, sp.Y, eps, "spacing is reported, not clamped")
	require.Len(t, warnings, 2)
	assert.Equal(t, "X", warnings[0].Axis)
	assert.Equal(t, "Y", warnings[1].Axis)
}

func TestCalculateSpacing_NoWarningForSingleAxis(t *testing.T) {
	// Oversized items on an axis with one item do not matter.
	grid := model.GridConfig{Columns: 1, Rows: 3, TrayWidth: 2, TrayHeight: 26, ItemSize: 3}
	_, warnings, err := CalculateSpacing(grid, model.SideBack)
	require.NoError(t, err)
	assert.Empty(t, warnings)
}
