package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/traypaint/internal/model"
)

const eps = 1e-9

// newTestSpacing returns the spacing of the stock 4 x 5 tray.
func newTestSpacing(t *testing.T) model.Spacing {
	t.Helper()
	sp, warnings, err := CalculateSpacing(model.DefaultJob().Grid, model.SideBack)
	require.NoError(t, err)
	require.Empty(t, warnings)
	return sp
}

func TestGenerateSerpentine_DefaultTray(t *testing.T) {
	job := model.DefaultJob()
	path := GenerateSerpentine(job.Origin, job.Offset, newTestSpacing(t))

	want := []model.Waypoint{
		{X: 20, Y: 21.5, Kind: model.WaypointStart},
		{X: 5.5, Y: 21.5, Kind: model.WaypointSweep},
		{X: 5.5, Y: 15.875, Kind: model.WaypointTransition},
		{X: 20, Y: 15.875, Kind: model.WaypointSweep},
		{X: 20, Y: 10.25, Kind: model.WaypointTransition},
		{X: 5.5, Y: 10.25, Kind: model.WaypointSweep},
		{X: 5.5, Y: 4.625, Kind: model.WaypointTransition},
		{X: 20, Y: 4.625, Kind: model.WaypointSweep},
		{X: 20, Y: -1.0, Kind: model.WaypointTransition},
		{X: 5.5, Y: -1.0, Kind: model.WaypointSweep},
	}
	require.Len(t, path, len(want))
	for i := range want {
		assert.InDelta(t, want[i].X, path[i].X, eps, "waypoint %d X", i)
		assert.InDelta(t, want[i].Y, path[i].Y, eps, "waypoint %d Y", i)
		assert.Equal(t, want[i].Kind, path[i].Kind, "waypoint %d kind", i)
	}
}

func TestGenerateSerpentine_WaypointCount(t *testing.T) {
	origin := model.Point2D{X: 10, Y: 10}
	for rows := 1; rows <= 8; rows++ {
		for cols := 1; cols <= 4; cols++ {
			grid := model.GridConfig{Columns: cols, Rows: rows, TrayWidth: 30, TrayHeight: 30, ItemSize: 2}
			sp, _, err := CalculateSpacing(grid, model.SideBack)
			require.NoError(t, err)

			path := GenerateSerpentine(origin, model.GunOffset{}, sp)
			assert.Len(t, path, 2*rows, "rows=%d cols=%d", rows, cols)
		}
	}
}

func TestGenerateSerpentine_SweepAlternation(t *testing.T) {
	job := model.DefaultJob()
	sp := newTestSpacing(t)
	path := GenerateSerpentine(job.Origin, job.Offset, sp)

	lowX := job.Origin.X - float64(sp.Steps-1)*sp.X + job.Offset.DX
	highX := job.Origin.X + job.Offset.DX
	startY := job.Origin.Y + job.Offset.DY

	sweep := 0
	for _, w := range path {
		if w.Kind != model.WaypointSweep {
			continue
		}
		if sweep%2 == 0 {
			assert.InDelta(t, lowX, w.X, eps, "even sweep %d should end at the low-X end", sweep)
		} else {
			assert.InDelta(t, highX, w.X, eps, "odd sweep %d should end at the origin side", sweep)
		}
		assert.Equal(t, startY-float64(sweep)*sp.Y, w.Y, "sweep %d Y", sweep)
		sweep++
	}
	assert.Equal(t, sp.Sweeps, sweep)
}

func TestGenerateSerpentine_TransitionsAreVertical(t *testing.T) {
	job := model.DefaultJob()
	path := GenerateSerpentine(job.Origin, job.Offset, newTestSpacing(t))

	for i, w := range path {
		if w.Kind != model.WaypointTransition {
			continue
		}
		prev := path[i-1]
		assert.Equal(t, model.WaypointSweep, prev.Kind)
		assert.Equal(t, prev.X, w.X, "transition %d must not move horizontally", i)
		assert.Less(t, w.Y, prev.Y, "transition %d must move toward negative Y", i)
	}
}

func TestGenerateSerpentine_SingleColumn(t *testing.T) {
	grid := model.GridConfig{Columns: 1, Rows: 3, TrayWidth: 18, TrayHeight: 26, ItemSize: 3, Padding: 0.5}
	sp, _, err := CalculateSpacing(grid, model.SideBack)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sp.X)

	origin := model.Point2D{X: 20, Y: 20}
	offset := model.GunOffset{DX: 0.25, DY: 1.5}
	path := GenerateSerpentine(origin, offset, sp)
	require.Len(t, path, 6)
	for i, w := range path {
		assert.Equal(t, path[0].X, w.X, "waypoint %d should keep the start X", i)
	}
}

func TestGenerateSerpentine_SingleRow(t *testing.T) {
	grid := model.GridConfig{Columns: 4, Rows: 1, TrayWidth: 18, TrayHeight: 26, ItemSize: 3, Padding: 0.5}
	sp, _, err := CalculateSpacing(grid, model.SideBack)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sp.Y)

	job := model.DefaultJob()
	path := GenerateSerpentine(job.Origin, job.Offset, sp)

	require.Len(t, path, 2, "a single row is the start plus one sweep endpoint")
	assert.Equal(t, model.WaypointStart, path[0].Kind)
	assert.Equal(t, model.WaypointSweep, path[1].Kind)
	for _, w := range path {
		assert.Equal(t, 21.5, w.Y)
		assert.NotEqual(t, model.WaypointTransition, w.Kind)
	}
	assert.InDelta(t, 5.5, path[1].X, eps)
}

func TestGenerateSerpentine_SingleCell(t *testing.T) {
	grid := model.GridConfig{Columns: 1, Rows: 1, TrayWidth: 4, TrayHeight: 4, ItemSize: 3}
	sp, _, err := CalculateSpacing(grid, model.SideBack)
	require.NoError(t, err)

	path := GenerateSerpentine(model.Point2D{X: 1, Y: 2}, model.GunOffset{DX: 0, DY: 1}, sp)
	require.Len(t, path, 2)
	assert.Equal(t, path[0].Point(), path[1].Point(), "single cell sweep collapses to a point")
}

func TestGenerateSerpentine_Idempotent(t *testing.T) {
	job := model.DefaultJob()
	sp := newTestSpacing(t)

	first := GenerateSerpentine(job.Origin, job.Offset, sp)
	second := GenerateSerpentine(job.Origin, job.Offset, sp)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated generation differs (-first +second):\n%s", diff)
	}
}

func TestGenerateSerpentine_NoSweeps(t *testing.T) {
	assert.Nil(t, GenerateSerpentine(model.Point2D{}, model.GunOffset{}, model.Spacing{}))
}

func TestGenerateUpDown_DefaultTray(t *testing.T) {
	job := model.DefaultJob()
	sp := newTestSpacing(t)
	path := GenerateUpDown(job.Origin, job.Offset, sp)

	colX := func(c int) float64 { return 20 - float64(c)*sp.X }
	want := []model.Waypoint{
		{X: 20, Y: 21.5, Kind: model.WaypointStart},
		{X: colX(0), Y: -1, Kind: model.WaypointSweep},
		{X: colX(1), Y: -1, Kind: model.WaypointTransition},
		{X: colX(1), Y: 21.5, Kind: model.WaypointSweep},
		{X: colX(2), Y: 21.5, Kind: model.WaypointTransition},
		{X: colX(2), Y: -1, Kind: model.WaypointSweep},
		{X: colX(3), Y: -1, Kind: model.WaypointTransition},
		{X: colX(3), Y: 21.5, Kind: model.WaypointSweep},
	}
	require.Len(t, path, len(want))
	for i := range want {
		assert.InDelta(t, want[i].X, path[i].X, eps, "waypoint %d X", i)
		assert.InDelta(t, want[i].Y, path[i].Y, eps, "waypoint %d Y", i)
		assert.Equal(t, want[i].Kind, path[i].Kind, "waypoint %d kind", i)
	}
	assert.InDelta(t, 5.5, path[len(path)-1].X, eps)
}

func TestGenerateUpDown_SingleRowSkipsSweeps(t *testing.T) {
	grid := model.GridConfig{Columns: 3, Rows: 1, TrayWidth: 18, TrayHeight: 26, ItemSize: 3}
	sp, _, err := CalculateSpacing(grid, model.SideBack)
	require.NoError(t, err)

	path := GenerateUpDown(model.Point2D{X: 20, Y: 20}, model.GunOffset{}, sp)
	require.Len(t, path, 3, "start plus two column shifts")
	for _, w := range path[1:] {
		assert.Equal(t, model.WaypointTransition, w.Kind)
		assert.Equal(t, 20.0, w.Y)
	}
}
