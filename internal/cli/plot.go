package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/piwi3910/traypaint/internal/export"
)

func newPlotCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the path for visual verification",
		Long:  `Render the path to an image. The format follows the output extension: png, svg, pdf, eps, jpg or tif.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd.Context(), cmd.OutOrStdout(), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "path.png", "output image file")
	return cmd
}

func runPlot(ctx context.Context, out io.Writer, output string) error {
	plan, err := generatePlan(ctx)
	if err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(ctx))
	if err := export.ExportPlot(output, plan); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %s", output))
	printFile(out, output)
	return nil
}
