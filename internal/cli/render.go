package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/piwi3910/traypaint/internal/export"
	"github.com/piwi3910/traypaint/internal/model"
)

// Artifact file names written by render.
const (
	fileGCode = "paint.gcode"
	filePlot  = "path.png"
)

func newRenderCmd() *cobra.Command {
	var dir, profile string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the plot, paint program and every export into a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateProfile(profile); err != nil {
				return err
			}
			return runRender(cmd.Context(), cmd.OutOrStdout(), dir, profile)
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "out", "output directory")
	cmd.Flags().StringVar(&profile, "profile", model.DefaultGCodeSettings().GCodeProfile, "controller profile for the paint program")
	return cmd
}

func runRender(ctx context.Context, out io.Writer, dir, profile string) error {
	plan, err := generatePlan(ctx)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	var written []string
	write := func(name string, fn func(path string) error) error {
		path := filepath.Join(dir, name)
		if err := fn(path); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		logger.Debug("wrote", "file", path)
		written = append(written, path)
		return nil
	}

	if err := write(filePlot, func(path string) error { return export.ExportPlot(path, plan) }); err != nil {
		return err
	}
	code, err := generateGCode(ctx, plan, profile)
	if err != nil {
		return err
	}
	if err := write(fileGCode, func(path string) error { return os.WriteFile(path, []byte(code), 0644) }); err != nil {
		return err
	}
	for _, format := range formatNames() {
		exportFn := exporters[format]
		if err := write("plan."+format, func(path string) error { return exportFn(path, plan) }); err != nil {
			return err
		}
	}

	prog.done(fmt.Sprintf("Rendered %d files to %s", len(written), dir))
	for _, path := range written {
		printFile(out, path)
	}
	return nil
}
