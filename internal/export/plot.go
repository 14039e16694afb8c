package export

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/piwi3910/traypaint/internal/model"
)

const (
	plotSize    = 8 * vg.Inch
	labelOffset = 0.1 // inches, data units
	plotPad     = 1.5 // inches of margin around the extent
)

var (
	pathColor = color.RGBA{R: 33, G: 150, B: 243, A: 255}
	gridColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	startFill = color.RGBA{R: 76, G: 175, B: 80, A: 255}
	endFill   = color.RGBA{R: 244, G: 67, B: 54, A: 255}
)

// ExportPlot renders the path for visual verification. The format follows the
// file extension (png, svg, pdf, eps, jpg, tif).
func ExportPlot(path string, plan model.Plan) error {
	p, err := NewPathPlot(plan)
	if err != nil {
		return err
	}
	if err := p.Save(plotSize, plotSize, path); err != nil {
		return fmt.Errorf("failed to save plot %s: %w", path, err)
	}
	return nil
}

// NewPathPlot builds the plot: waypoints joined in visit order, numbered from
// 1, the first and last marked, and the item-grid rectangle dashed. Both axes
// span the same range and Y grows downward, the machine convention.
func NewPathPlot(plan model.Plan) (*plot.Plot, error) {
	if len(plan.Waypoints) == 0 {
		return nil, fmt.Errorf("no waypoints to plot: %w", model.ErrEmptyPlan)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Simulated TCP Path for %s Side Painting", plan.Job.Side)
	p.X.Label.Text = "X (inches)"
	p.Y.Label.Text = "Y (inches)"
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(plan.Waypoints))
	labels := make([]string, len(plan.Waypoints))
	labelPts := make(plotter.XYs, len(plan.Waypoints))
	for i, w := range plan.Waypoints {
		pts[i] = plotter.XY{X: w.X, Y: w.Y}
		labelPts[i] = plotter.XY{X: w.X + labelOffset, Y: w.Y + labelOffset}
		labels[i] = fmt.Sprintf("%d", i+1)
	}

	grid, err := plotter.NewLine(rectXYs(plan.Bounds))
	if err != nil {
		return nil, fmt.Errorf("grid outline: %w", err)
	}
	grid.Color = gridColor
	grid.Width = vg.Points(1)
	grid.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("path line: %w", err)
	}
	line.Color = pathColor
	line.Width = vg.Points(1.5)

	dots, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("path points: %w", err)
	}
	dots.GlyphStyle.Shape = draw.CircleGlyph{}
	dots.GlyphStyle.Color = pathColor
	dots.GlyphStyle.Radius = vg.Points(2.5)

	start, err := plotter.NewScatter(pts[:1])
	if err != nil {
		return nil, fmt.Errorf("start marker: %w", err)
	}
	start.GlyphStyle.Shape = draw.CircleGlyph{}
	start.GlyphStyle.Color = startFill
	start.GlyphStyle.Radius = vg.Points(6)

	end, err := plotter.NewScatter(pts[len(pts)-1:])
	if err != nil {
		return nil, fmt.Errorf("end marker: %w", err)
	}
	end.GlyphStyle.Shape = draw.BoxGlyph{}
	end.GlyphStyle.Color = endFill
	end.GlyphStyle.Radius = vg.Points(6)

	numbers, err := plotter.NewLabels(plotter.XYLabels{XYs: labelPts, Labels: labels})
	if err != nil {
		return nil, fmt.Errorf("point labels: %w", err)
	}

	p.Add(grid, line, dots, start, end, numbers)
	p.Legend.Add("Item grid", grid)
	p.Legend.Add("TCP path", line, dots)
	p.Legend.Add("Start", start)
	p.Legend.Add("End", end)
	p.Legend.Top = true

	setEqualAspect(p, plan.Extent())
	return p, nil
}

// rectXYs returns the closed outline of r.
func rectXYs(r model.Rect) plotter.XYs {
	return plotter.XYs{
		{X: r.TopLeft.X, Y: r.TopLeft.Y},
		{X: r.BottomRight.X, Y: r.TopLeft.Y},
		{X: r.BottomRight.X, Y: r.BottomRight.Y},
		{X: r.TopLeft.X, Y: r.BottomRight.Y},
		{X: r.TopLeft.X, Y: r.TopLeft.Y},
	}
}

// setEqualAspect gives both axes the same span around the extent's center.
// On the square canvas the scales are close to equal but not exact: the title,
// axis labels and ticks take more room on some sides than others.
func setEqualAspect(p *plot.Plot, ext model.Rect) {
	span := math.Max(ext.Width(), ext.Height()) + 2*plotPad
	cx := (ext.TopLeft.X + ext.BottomRight.X) / 2
	cy := (ext.TopLeft.Y + ext.BottomRight.Y) / 2

	p.X.Min, p.X.Max = cx-span/2, cx+span/2
	p.Y.Min, p.Y.Max = cy-span/2, cy+span/2
}
