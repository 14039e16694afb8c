package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"

	"github.com/piwi3910/traypaint/internal/model"
)

// DXF layer names.
const (
	LayerGrid   = "GRID"
	LayerSpray  = "SPRAY"
	LayerTravel = "TRAVEL"
	LayerLabels = "LABELS"
)

const (
	dxfTextHeight  = 0.25 // inches
	dxfStartRadius = 0.2  // inches
)

// ExportDXF writes the path as a 2D drawing in inches. Sweeps and transitions
// go on separate layers so the CAM operator can hide the travel moves.
func ExportDXF(path string, plan model.Plan) error {
	if len(plan.Waypoints) == 0 {
		return fmt.Errorf("no waypoints to export: %w", model.ErrEmptyPlan)
	}

	d := dxf.NewDrawing()
	layers := []struct {
		name string
		col  color.ColorNumber
	}{
		{LayerGrid, color.White},
		{LayerSpray, color.Cyan},
		{LayerTravel, color.Yellow},
		{LayerLabels, color.Green},
	}
	for _, l := range layers {
		if _, err := d.AddLayer(l.name, l.col, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("add layer %s: %w", l.name, err)
		}
	}

	if err := d.ChangeLayer(LayerGrid); err != nil {
		return err
	}
	outline := rectXYs(plan.Bounds)
	for i := 1; i < len(outline); i++ {
		if _, err := d.Line(outline[i-1].X, outline[i-1].Y, 0, outline[i].X, outline[i].Y, 0); err != nil {
			return fmt.Errorf("grid outline: %w", err)
		}
	}

	for i := 1; i < len(plan.Waypoints); i++ {
		from, to := plan.Waypoints[i-1], plan.Waypoints[i]
		layer := LayerTravel
		if to.Kind == model.WaypointSweep {
			layer = LayerSpray
		}
		if err := d.ChangeLayer(layer); err != nil {
			return err
		}
		if _, err := d.Line(from.X, from.Y, 0, to.X, to.Y, 0); err != nil {
			return fmt.Errorf("segment %d: %w", i, err)
		}
	}

	if err := d.ChangeLayer(LayerLabels); err != nil {
		return err
	}
	start := plan.Start()
	if _, err := d.Circle(start.X, start.Y, 0, dxfStartRadius); err != nil {
		return fmt.Errorf("start marker: %w", err)
	}
	for i, w := range plan.Waypoints {
		label := fmt.Sprintf("%d", i+1)
		if _, err := d.Text(label, w.X+labelOffset, w.Y+labelOffset, 0, dxfTextHeight); err != nil {
			return fmt.Errorf("label %s: %w", label, err)
		}
	}

	return d.SaveAs(path)
}
