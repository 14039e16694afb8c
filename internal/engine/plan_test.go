package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/traypaint/internal/model"
)

func TestNewPlan_Default(t *testing.T) {
	plan, err := NewPlan(model.DefaultJob())
	require.NoError(t, err)

	assert.Len(t, plan.ID, 8)
	assert.Len(t, plan.Waypoints, 10)
	assert.Empty(t, plan.Warnings)

	assert.InDelta(t, 5.5, plan.Bounds.TopLeft.X, eps)
	assert.InDelta(t, 20.0, plan.Bounds.TopLeft.Y, eps)
	assert.InDelta(t, 20.0, plan.Bounds.BottomRight.X, eps)
	assert.InDelta(t, -2.5, plan.Bounds.BottomRight.Y, eps)
}

func TestNewPlan_UpDown(t *testing.T) {
	job := model.DefaultJob()
	job.Pattern = model.PatternUpDown
	plan, err := NewPlan(job)
	require.NoError(t, err)
	assert.Len(t, plan.Waypoints, 8)
}

func TestNewPlan_InvalidGrid(t *testing.T) {
	job := model.DefaultJob()
	job.Grid.Rows = 0
	_, err := NewPlan(job)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidGridConfig))
	assert.Contains(t, err.Error(), "Back side")
}

func TestNewPlan_UnknownPattern(t *testing.T) {
	job := model.DefaultJob()
	job.Pattern = model.Pattern(45)
	_, err := NewPlan(job)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnknownPattern))
}

func TestNewPlan_CarriesWarnings(t *testing.T) {
	job := model.DefaultJob()
	job.Grid.ItemSize = 20
	plan, err := NewPlan(job)
	require.NoError(t, err)
	require.NotEmpty(t, plan.Warnings)
	assert.Equal(t, "X", plan.Warnings[0].Axis)
}

func TestNewPlan_SameGeometryDifferentID(t *testing.T) {
	a, err := NewPlan(model.DefaultJob())
	require.NoError(t, err)
	b, err := NewPlan(model.DefaultJob())
	require.NoError(t, err)

	if diff := cmp.Diff(a, b, cmpopts.IgnoreFields(model.Plan{}, "ID")); diff != "" {
		t.Errorf("plans differ beyond ID (-a +b):\n%s", diff)
	}
}

func TestGridBounds_SingleCell(t *testing.T) {
	r := GridBounds(model.Point2D{X: 3, Y: 4}, model.Spacing{Sweeps: 1, Steps: 1})
	assert.Equal(t, model.Point2D{X: 3, Y: 4}, r.TopLeft)
	assert.Equal(t, model.Point2D{X: 3, Y: 4}, r.BottomRight)
}
