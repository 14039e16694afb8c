package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/piwi3910/traypaint/internal/engine"
	"github.com/piwi3910/traypaint/internal/model"
)

// generatePlan computes the stock job's plan, logging spacing warnings and,
// at debug level, every waypoint.
func generatePlan(ctx context.Context) (model.Plan, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	job := model.DefaultJob()
	plan, err := engine.NewPlan(job)
	if err != nil {
		return model.Plan{}, fmt.Errorf("plan %q: %w", job.Name, err)
	}

	for _, w := range plan.Warnings {
		logger.Warn("degenerate spacing", "axis", w.Axis, "spacing", w.Spacing)
	}
	tracePlan(logger, plan)

	prog.done(fmt.Sprintf("Generated plan %s: %d waypoints", plan.ID, len(plan.Waypoints)))
	return plan, nil
}

func tracePlan(logger *log.Logger, plan model.Plan) {
	logger.Debug("spacing",
		"side", plan.Job.Side,
		"pattern", plan.Job.Pattern,
		"x", plan.Spacing.X,
		"y", plan.Spacing.Y,
		"sweeps", plan.Spacing.Sweeps,
		"steps", plan.Spacing.Steps)

	sweep := 0
	for i, w := range plan.Waypoints {
		switch w.Kind {
		case model.WaypointStart:
			logger.Debug("start", "point", i+1, "x", w.X, "y", w.Y)
		case model.WaypointSweep:
			sweep++
			logger.Debug("sweep", "n", sweep, "point", i+1, "x", w.X, "y", w.Y)
		case model.WaypointTransition:
			logger.Debug("transition", "point", i+1, "x", w.X, "y", w.Y)
		}
	}
}
