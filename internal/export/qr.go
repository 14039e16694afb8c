package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/traypaint/internal/model"
)

const qrSize = 30.0 // QR code size in mm

// PlanSummary is the data encoded into the job sheet's QR code. It identifies
// the plan and lets the operator check the endpoints against the controller.
type PlanSummary struct {
	ID        string        `json:"id"`
	Job       string        `json:"job"`
	Side      string        `json:"side"`
	Pattern   string        `json:"pattern"`
	Columns   int           `json:"cols"`
	Rows      int           `json:"rows"`
	SpacingX  float64       `json:"spacing_x"`
	SpacingY  float64       `json:"spacing_y"`
	Waypoints int           `json:"waypoints"`
	Start     model.Point2D `json:"start"`
	End       model.Point2D `json:"end"`
}

// SummarizePlan extracts the QR payload from a non-empty plan.
func SummarizePlan(plan model.Plan) PlanSummary {
	return PlanSummary{
		ID:        plan.ID,
		Job:       plan.Job.Name,
		Side:      plan.Job.Side.String(),
		Pattern:   plan.Job.Pattern.String(),
		Columns:   plan.Job.Grid.Columns,
		Rows:      plan.Job.Grid.Rows,
		SpacingX:  plan.Spacing.X,
		SpacingY:  plan.Spacing.Y,
		Waypoints: len(plan.Waypoints),
		Start:     plan.Start().Point(),
		End:       plan.End().Point(),
	}
}

// drawPlanQR places the plan's QR code with its top-left corner at x, y.
func drawPlanQR(pdf *fpdf.Fpdf, plan model.Plan, x, y float64) error {
	qrData, err := json.Marshal(SummarizePlan(plan))
	if err != nil {
		return fmt.Errorf("failed to marshal plan summary: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := "qr_plan_" + plan.ID
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, x, y, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(x, y+qrSize)
	pdf.CellFormat(qrSize, 3, "Plan "+plan.ID, "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return nil
}
