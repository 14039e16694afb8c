package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/piwi3910/traypaint/internal/model"
)

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the waypoint table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := generatePlan(cmd.Context())
			if err != nil {
				return err
			}
			printPlan(cmd.OutOrStdout(), plan)
			return nil
		},
	}
}

// printPlan writes the plan summary followed by one table row per waypoint.
func printPlan(w io.Writer, plan model.Plan) {
	job := plan.Job
	stats := plan.Stats()
	b := plan.Bounds

	printTitle(w, "%s (plan %s)", job.Name, plan.ID)
	printKeyValue(w, "Side", fmt.Sprintf("%s, rotation %d deg, pattern %s", job.Side, job.Side.RotationDegrees(), job.Pattern))
	printKeyValue(w, "Grid", fmt.Sprintf("%d x %d on %.3f x %.3f in", job.Grid.Columns, job.Grid.Rows, job.Grid.TrayWidth, job.Grid.TrayHeight))
	printKeyValue(w, "Spacing", fmt.Sprintf("X %.4f  Y %.4f in", plan.Spacing.X, plan.Spacing.Y))
	printKeyValue(w, "Bounds", fmt.Sprintf("(%.4f, %.4f) to (%.4f, %.4f)", b.TopLeft.X, b.TopLeft.Y, b.BottomRight.X, b.BottomRight.Y))
	printKeyValue(w, "Motion", fmt.Sprintf("%.3f in sprayed, %.3f in travel", stats.SprayDistance, stats.TravelDistance))
	for _, warn := range plan.Warnings {
		printWarning(w, "%s", warn.Error())
	}
	fmt.Fprintln(w)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleDim).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		}).
		Headers("#", "Kind", "X", "Y")
	for i, wp := range plan.Waypoints {
		t.Row(fmt.Sprintf("%d", i+1), wp.Kind.String(), fmt.Sprintf("%.4f", wp.X), fmt.Sprintf("%.4f", wp.Y))
	}
	fmt.Fprintln(w, t.Render())
}
