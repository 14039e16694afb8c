package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/piwi3910/traypaint/internal/model"
)

// NewPlan validates a job and produces its complete paint plan.
func NewPlan(job model.Job) (model.Plan, error) {
	sp, warnings, err := CalculateSpacing(job.Grid, job.Side)
	if err != nil {
		return model.Plan{}, fmt.Errorf("spacing for %s side: %w", job.Side, err)
	}

	var path []model.Waypoint
	switch job.Pattern {
	case model.PatternSideways:
		path = GenerateSerpentine(job.Origin, job.Offset, sp)
	case model.PatternUpDown:
		path = GenerateUpDown(job.Origin, job.Offset, sp)
	default:
		return model.Plan{}, fmt.Errorf("%w: %d", model.ErrUnknownPattern, int(job.Pattern))
	}

	return model.Plan{
		ID:        uuid.New().String()[:8],
		Job:       job,
		Spacing:   sp,
		Waypoints: path,
		Bounds:    GridBounds(job.Origin, sp),
		Warnings:  warnings,
	}, nil
}

// GridBounds returns the rectangle through the outermost item-slot centers.
// The reference slot is the top-right corner.
func GridBounds(origin model.Point2D, sp model.Spacing) model.Rect {
	return model.Rect{
		TopLeft: model.Point2D{
			X: origin.X - float64(sp.Steps-1)*sp.X,
			Y: origin.Y,
		},
		BottomRight: model.Point2D{
			X: origin.X,
			Y: origin.Y - float64(sp.Sweeps-1)*sp.Y,
		},
	}
}
