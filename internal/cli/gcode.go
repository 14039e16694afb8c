package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/traypaint/internal/gcode"
	"github.com/piwi3910/traypaint/internal/model"
)

func newGCodeCmd() *cobra.Command {
	var output, profile string

	cmd := &cobra.Command{
		Use:   "gcode",
		Short: "Write the paint program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateProfile(profile); err != nil {
				return err
			}
			plan, err := generatePlan(cmd.Context())
			if err != nil {
				return err
			}
			code, err := generateGCode(cmd.Context(), plan, profile)
			if err != nil {
				return err
			}
			if output == "" {
				_, err := io.WriteString(cmd.OutOrStdout(), code)
				return err
			}
			if err := os.WriteFile(output, []byte(code), 0644); err != nil {
				return fmt.Errorf("failed to write program: %w", err)
			}
			printFile(cmd.OutOrStdout(), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&profile, "profile", model.DefaultGCodeSettings().GCodeProfile,
		"controller profile: "+strings.Join(model.GetProfileNames(), ", "))
	return cmd
}

// validateProfile rejects names GetProfile would silently replace with Generic.
func validateProfile(name string) error {
	if !slices.Contains(model.GetProfileNames(), name) {
		return fmt.Errorf("unknown profile: %s (must be one of %s)", name, strings.Join(model.GetProfileNames(), ", "))
	}
	return nil
}

// generateGCode writes the program for plan and reads it back, logging the
// move counts and failing when they no longer match the waypoints.
func generateGCode(ctx context.Context, plan model.Plan, profile string) (string, error) {
	logger := loggerFromContext(ctx)

	settings := model.DefaultGCodeSettings()
	settings.GCodeProfile = profile
	gen := gcode.New(settings)

	code, err := gen.Generate(plan)
	if err != nil {
		return "", err
	}

	sum := gcode.Summarize(gcode.ParseGCode(code, gen.Profile()))
	stats := plan.Stats()
	logger.Info("program check",
		"profile", gen.Profile().Name,
		"spray", sum.Spray,
		"travel", sum.Travel,
		"spray_in", fmt.Sprintf("%.3f", sum.SprayDistance))
	if sum.Spray != stats.Sweeps || sum.Travel != stats.Transitions {
		return "", fmt.Errorf("program check failed: %d spray and %d travel moves for %d sweeps and %d transitions",
			sum.Spray, sum.Travel, stats.Sweeps, stats.Transitions)
	}
	return code, nil
}
