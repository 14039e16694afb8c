// Package cli implements the traypaint command-line interface.
//
// Every command computes the paint path for the fixture's stock job and
// writes one view of it: a waypoint table, a plot, a paint program or an
// export file. Flags choose outputs only; the path geometry is fixed by
// model.DefaultJob.
//
// All commands accept --verbose (-v), which traces every sweep and
// transition at debug level. Loggers travel in the command context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "traypaint"

var version = "dev"

// SetVersion sets the version reported by --version. main calls it with
// values injected through ldflags.
func SetVersion(v string) {
	version = v
}

// NewRootCommand builds the command tree. Command output goes to out and
// logs go to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "traypaint computes the spray gun path over a tray of items",
		Long:         `traypaint derives the serpentine tool-center-point path a paint gun follows over the item grid of a tray, and renders it as a table, plot, paint program or export file for verification.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(errOut, level)))
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace every sweep and transition")

	root.AddCommand(newPathCmd())
	root.AddCommand(newPlotCmd())
	root.AddCommand(newGCodeCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newRenderCmd())

	return root
}
