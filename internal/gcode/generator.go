package gcode

import (
	"fmt"
	"math"
	"strings"

	"github.com/piwi3910/traypaint/internal/model"
)

// Generator produces a paint program from a plan.
type Generator struct {
	Settings model.GCodeSettings
	profile  model.GCodeProfile
}

func New(settings model.GCodeSettings) *Generator {
	return &Generator{
		Settings: settings,
		profile:  model.GetProfile(settings.GCodeProfile),
	}
}

// Profile returns the post-processor profile the generator writes for.
func (g *Generator) Profile() model.GCodeProfile {
	return g.profile
}

// Generate produces the program for a plan. The gun is opened before every
// sweep and closed before every transition; the pressure pot, when controlled,
// stays on for the whole job.
func (g *Generator) Generate(plan model.Plan) (string, error) {
	if len(plan.Waypoints) == 0 {
		return "", model.ErrEmptyPlan
	}

	var b strings.Builder
	g.writeHeader(&b, plan)

	total := 0
	for _, w := range plan.Waypoints {
		if w.Kind == model.WaypointSweep {
			total++
		}
	}

	gunOn := false
	sweep := 0
	prev := plan.Start()
	for _, w := range plan.Waypoints[1:] {
		switch w.Kind {
		case model.WaypointSweep:
			sweep++
			b.WriteString(g.comment(fmt.Sprintf("--- Sweep %d/%d %s ---",
				sweep, total, direction(prev, w))))
			if !gunOn {
				g.writeGun(&b, true)
				gunOn = true
			}
			g.writeMove(&b, w, g.Settings.FeedRate)
		default:
			if gunOn {
				g.writeGun(&b, false)
				gunOn = false
			}
			g.writeMove(&b, w, g.Settings.TravelRate)
		}
		prev = w
	}
	if gunOn {
		g.writeGun(&b, false)
	}

	g.writeFooter(&b)
	return b.String(), nil
}

func (g *Generator) writeHeader(b *strings.Builder, plan model.Plan) {
	p := g.profile
	job := plan.Job

	b.WriteString(g.comment(fmt.Sprintf("traypaint GCode - %s, plan %s", job.Name, plan.ID)))
	b.WriteString(g.comment(fmt.Sprintf("Side: %s, rotation %d deg, pattern %s",
		job.Side, job.Side.RotationDegrees(), job.Pattern)))
	b.WriteString(g.comment(fmt.Sprintf("Grid: %d cols x %d rows, tray %s x %s in",
		job.Grid.Columns, job.Grid.Rows, g.format(job.Grid.TrayWidth), g.format(job.Grid.TrayHeight))))
	b.WriteString(g.comment(fmt.Sprintf("Spacing: X=%s Y=%s in",
		g.format(plan.Spacing.X), g.format(plan.Spacing.Y))))
	b.WriteString(g.comment(fmt.Sprintf("Feed: %.0f in/min, travel: %.0f in/min",
		g.Settings.FeedRate, g.Settings.TravelRate)))
	b.WriteString(g.comment(fmt.Sprintf("Profile: %s", p.Name)))
	for _, w := range plan.Warnings {
		b.WriteString(g.comment("WARNING: " + w.Error()))
	}
	b.WriteString("\n")

	for _, code := range p.StartCode {
		b.WriteString(code + "\n")
	}
	if g.Settings.PressurePot && p.PressureOn != "" {
		b.WriteString(p.PressureOn + "\n")
	}

	start := plan.Start()
	b.WriteString(fmt.Sprintf("%s Z%s\n", p.RapidMove, g.format(g.Settings.SafeZ)))
	b.WriteString(fmt.Sprintf("%s X%s Y%s\n", p.RapidMove, g.format(start.X), g.format(start.Y)))
	b.WriteString(fmt.Sprintf("%s Z%s F%s\n", p.FeedMove, g.format(g.Settings.PaintZ), g.format(g.Settings.TravelRate)))
	b.WriteString("\n")
}

func (g *Generator) writeFooter(b *strings.Builder) {
	p := g.profile

	b.WriteString("\n")
	b.WriteString(g.comment("=== Job complete ==="))
	if g.Settings.PressurePot && p.PressureOff != "" {
		b.WriteString(p.PressureOff + "\n")
	}
	for _, code := range p.EndCode {
		code = strings.ReplaceAll(code, "[SafeZ]", g.format(g.Settings.SafeZ))
		b.WriteString(code + "\n")
	}
}

func (g *Generator) writeGun(b *strings.Builder, on bool) {
	if !on {
		b.WriteString(g.profile.GunOff + "\n")
		return
	}
	b.WriteString(g.profile.GunOn + "\n")
	if g.profile.Dwell != "" {
		b.WriteString(g.profile.Dwell + "\n")
	}
}

func (g *Generator) writeMove(b *strings.Builder, w model.Waypoint, feed float64) {
	b.WriteString(fmt.Sprintf("%s X%s Y%s F%s\n", g.profile.FeedMove,
		g.format(w.X), g.format(w.Y), g.format(feed)))
}

// comment wraps text in the profile's comment syntax.
func (g *Generator) comment(text string) string {
	return g.profile.CommentPrefix + " " + text + g.profile.CommentSuffix + "\n"
}

// format formats a coordinate according to the profile's decimal places.
func (g *Generator) format(v float64) string {
	format := fmt.Sprintf("%%.%df", g.profile.DecimalPlaces)
	return fmt.Sprintf(format, v)
}

// direction describes the horizontal or vertical travel between two points.
func direction(from, to model.Waypoint) string {
	dx := to.X - from.X
	dy := to.Y - from.Y
	switch {
	case dx == 0 && dy == 0:
		return "in place"
	case math.Abs(dx) >= math.Abs(dy) && dx < 0:
		return "toward -X"
	case math.Abs(dx) >= math.Abs(dy):
		return "toward +X"
	case dy < 0:
		return "toward -Y"
	default:
		return "toward +Y"
	}
}

