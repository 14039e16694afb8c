// Package export writes generated paint plans to files: path plots, a printable
// job sheet, CAD drawings, spreadsheets and JSON.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/traypaint/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth     = 210.0
	pageHeight    = 297.0
	marginLeft    = 15.0
	marginRight   = 15.0
	marginTop     = 15.0
	marginBottom  = 15.0
	headerHeight  = 10.0
	diagramHeight = 110.0
	rowHeight     = 5.0
	diagramPad    = 1.0 // inches of margin drawn around the path
)

var (
	sprayColor  = [3]int{33, 150, 243}
	travelColor = [3]int{150, 150, 150}
	startColor  = [3]int{76, 175, 80}
	endColor    = [3]int{244, 67, 54}
)

// ExportPDF writes a one-job sheet for the operator: parameters, a scaled
// drawing of the path, a QR code identifying the plan and the waypoint table.
// The table continues on further pages when it does not fit.
func ExportPDF(path string, plan model.Plan) error {
	if len(plan.Waypoints) == 0 {
		return fmt.Errorf("no waypoints to export: %w", model.ErrEmptyPlan)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	renderTitle(pdf, plan)
	if err := drawPlanQR(pdf, plan, pageWidth-marginRight-qrSize, marginTop+headerHeight); err != nil {
		return err
	}
	y := renderParameters(pdf, plan, marginTop+headerHeight+2)
	y = renderPathDiagram(pdf, plan, y+4)
	y = renderWarnings(pdf, plan, y+2)
	renderWaypointTable(pdf, plan, y+4)

	return pdf.OutputFileAndClose(path)
}

func renderTitle(pdf *fpdf.Fpdf, plan model.Plan) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s: %s side paint path", plan.Job.Name, plan.Job.Side)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+headerHeight, pageWidth-marginRight, marginTop+headerHeight)
}

// renderParameters prints the job inputs and derived values as label/value
// pairs and returns the Y position below them.
func renderParameters(pdf *fpdf.Fpdf, plan model.Plan, y float64) float64 {
	job := plan.Job
	stats := plan.Stats()
	items := []struct {
		label string
		value string
	}{
		{"Plan", plan.ID},
		{"Side", fmt.Sprintf("%s (rotation %d deg)", job.Side, job.Side.RotationDegrees())},
		{"Pattern", job.Pattern.String()},
		{"Grid", fmt.Sprintf("%d columns x %d rows", job.Grid.Columns, job.Grid.Rows)},
		{"Tray", fmt.Sprintf("%.3f x %.3f in", job.Grid.TrayWidth, job.Grid.TrayHeight)},
		{"Item / padding", fmt.Sprintf("%.3f / %.3f in", job.Grid.ItemSize, job.Grid.Padding)},
		{"Origin", fmt.Sprintf("X %.3f  Y %.3f", job.Origin.X, job.Origin.Y)},
		{"Gun offset", fmt.Sprintf("dX %.3f  dY %.3f", job.Offset.DX, job.Offset.DY)},
		{"Spacing", fmt.Sprintf("X %.4f  Y %.4f in", plan.Spacing.X, plan.Spacing.Y)},
		{"Motion", fmt.Sprintf("%d sweeps, %d transitions, %.2f in sprayed, %.2f in travel",
			stats.Sweeps, stats.Transitions, stats.SprayDistance, stats.TravelDistance)},
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range items {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(30, rowHeight, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(110, rowHeight, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		y += rowHeight
	}
	return math.Max(y, marginTop+headerHeight+qrSize+4)
}

// renderPathDiagram draws the item-grid rectangle and the path at a common
// scale. Machine Y grows down the page, as on the fixture.
func renderPathDiagram(pdf *fpdf.Fpdf, plan model.Plan, top float64) float64 {
	ext := plan.Extent()
	minX := ext.TopLeft.X - diagramPad
	minY := ext.BottomRight.Y - diagramPad
	spanX := ext.Width() + 2*diagramPad
	spanY := ext.Height() + 2*diagramPad

	drawWidth := pageWidth - marginLeft - marginRight
	scale := math.Min(drawWidth/spanX, diagramHeight/spanY)
	canvasW := spanX * scale
	canvasH := spanY * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2

	toPage := func(x, y float64) (float64, float64) {
		return offsetX + (x-minX)*scale, top + (y-minY)*scale
	}

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.2)
	pdf.Rect(offsetX, top, canvasW, canvasH, "D")

	// Item grid
	gx, gy := toPage(plan.Bounds.TopLeft.X, plan.Bounds.BottomRight.Y)
	pdf.SetDrawColor(120, 120, 120)
	pdf.SetDashPattern([]float64{2, 1}, 0)
	pdf.Rect(gx, gy, plan.Bounds.Width()*scale, plan.Bounds.Height()*scale, "D")
	pdf.SetDashPattern([]float64{}, 0)

	pdf.SetLineWidth(0.5)
	for i := 1; i < len(plan.Waypoints); i++ {
		x1, y1 := toPage(plan.Waypoints[i-1].X, plan.Waypoints[i-1].Y)
		x2, y2 := toPage(plan.Waypoints[i].X, plan.Waypoints[i].Y)
		c := travelColor
		if plan.Waypoints[i].Kind == model.WaypointSweep {
			c = sprayColor
		}
		pdf.SetDrawColor(c[0], c[1], c[2])
		pdf.Line(x1, y1, x2, y2)
	}

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(0, 0, 0)
	for i, w := range plan.Waypoints {
		px, py := toPage(w.X, w.Y)
		pdf.SetFillColor(0, 0, 0)
		pdf.Circle(px, py, 0.6, "F")
		pdf.Text(px+1.2, py-1.2, fmt.Sprintf("%d", i+1))
	}

	sx, sy := toPage(plan.Start().X, plan.Start().Y)
	pdf.SetFillColor(startColor[0], startColor[1], startColor[2])
	pdf.Circle(sx, sy, 1.5, "F")

	ex, ey := toPage(plan.End().X, plan.End().Y)
	pdf.SetFillColor(endColor[0], endColor[1], endColor[2])
	pdf.Rect(ex-1.5, ey-1.5, 3, 3, "F")

	// Extent annotation below the diagram
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)
	label := fmt.Sprintf("Grid (%.3f, %.3f) to (%.3f, %.3f) in",
		plan.Bounds.TopLeft.X, plan.Bounds.TopLeft.Y, plan.Bounds.BottomRight.X, plan.Bounds.BottomRight.Y)
	pdf.SetXY(marginLeft, top+canvasH+1)
	pdf.CellFormat(drawWidth, 4, label, "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	return top + canvasH + 5
}

func renderWarnings(pdf *fpdf.Fpdf, plan model.Plan, y float64) float64 {
	if len(plan.Warnings) == 0 {
		return y
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(200, 0, 0)
	for _, w := range plan.Warnings {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 6, "WARNING: "+w.Error(), "", 0, "L", false, 0, "")
		y += 6
	}
	pdf.SetTextColor(0, 0, 0)
	return y
}

var (
	tableWidths  = []float64{20, 40, 40, 40}
	tableHeaders = []string{"#", "Kind", "X (in)", "Y (in)"}
)

func renderWaypointTable(pdf *fpdf.Fpdf, plan model.Plan, y float64) {
	y = renderTableHeader(pdf, y)

	pdf.SetFont("Helvetica", "", 9)
	for i, w := range plan.Waypoints {
		if y+rowHeight > pageHeight-marginBottom {
			pdf.AddPage()
			y = renderTableHeader(pdf, marginTop)
			pdf.SetFont("Helvetica", "", 9)
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		row := []string{
			fmt.Sprintf("%d", i+1),
			w.Kind.String(),
			fmt.Sprintf("%.4f", w.X),
			fmt.Sprintf("%.4f", w.Y),
		}
		xPos := marginLeft
		for j, cell := range row {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(tableWidths[j], rowHeight, cell, "1", 0, "C", true, 0, "")
			xPos += tableWidths[j]
		}
		y += rowHeight
	}
}

func renderTableHeader(pdf *fpdf.Fpdf, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range tableHeaders {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(tableWidths[i], rowHeight+1, header, "1", 0, "C", true, 0, "")
		xPos += tableWidths[i]
	}
	return y + rowHeight + 1
}
