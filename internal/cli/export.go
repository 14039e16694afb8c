package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/traypaint/internal/export"
	"github.com/piwi3910/traypaint/internal/model"
)

// exporters maps --format values to their writers.
var exporters = map[string]func(string, model.Plan) error{
	"pdf":  export.ExportPDF,
	"dxf":  export.ExportDXF,
	"xlsx": export.ExportXLSX,
	"json": export.ExportJSON,
}

func formatNames() []string {
	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validateFormat(format string) error {
	if _, ok := exporters[format]; !ok {
		return fmt.Errorf("invalid format: %s (must be one of %s)", format, strings.Join(formatNames(), ", "))
	}
	return nil
}

func newExportCmd() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the plan as a job sheet, drawing, spreadsheet or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			if output == "" {
				output = "plan." + format
			}
			return runExport(cmd.Context(), cmd.OutOrStdout(), format, output)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "pdf", "export format: "+strings.Join(formatNames(), ", "))
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default plan.<format>)")
	return cmd
}

func runExport(ctx context.Context, out io.Writer, format, output string) error {
	plan, err := generatePlan(ctx)
	if err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(ctx))
	if err := exporters[format](output, plan); err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	prog.done(fmt.Sprintf("Wrote %s", output))
	printFile(out, output)
	return nil
}
