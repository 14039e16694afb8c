package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/traypaint/internal/model"
)

// Sheet names in the workbook.
const (
	SheetWaypoints = "Waypoints"
	SheetJob       = "Job"
)

// ExportXLSX writes the waypoint list and the job parameters to a workbook.
func ExportXLSX(path string, plan model.Plan) error {
	if len(plan.Waypoints) == 0 {
		return fmt.Errorf("no waypoints to export: %w", model.ErrEmptyPlan)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetWaypoints); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetJob); err != nil {
		return fmt.Errorf("create sheet %s: %w", SheetJob, err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	rows := [][]interface{}{{"Index", "Kind", "X", "Y"}}
	for i, w := range plan.Waypoints {
		rows = append(rows, []interface{}{i + 1, w.Kind.String(), w.X, w.Y})
	}
	if err := writeRows(f, SheetWaypoints, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetWaypoints, "A1", "D1", bold); err != nil {
		return err
	}

	job := plan.Job
	params := [][]interface{}{
		{"Parameter", "Value"},
		{"Plan", plan.ID},
		{"Job", job.Name},
		{"Side", job.Side.String()},
		{"Rotation (deg)", job.Side.RotationDegrees()},
		{"Pattern", job.Pattern.String()},
		{"Columns", job.Grid.Columns},
		{"Rows", job.Grid.Rows},
		{"Tray width (in)", job.Grid.TrayWidth},
		{"Tray height (in)", job.Grid.TrayHeight},
		{"Item size (in)", job.Grid.ItemSize},
		{"Padding (in)", job.Grid.Padding},
		{"Origin X (in)", job.Origin.X},
		{"Origin Y (in)", job.Origin.Y},
		{"Gun offset X (in)", job.Offset.DX},
		{"Gun offset Y (in)", job.Offset.DY},
		{"Spacing X (in)", plan.Spacing.X},
		{"Spacing Y (in)", plan.Spacing.Y},
		{"Sweeps", plan.Spacing.Sweeps},
		{"Steps", plan.Spacing.Steps},
	}
	for _, w := range plan.Warnings {
		params = append(params, []interface{}{"Warning", w.Error()})
	}
	if err := writeRows(f, SheetJob, params); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetJob, "A1", "B1", bold); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("cell reference: %w", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				return fmt.Errorf("set %s!%s: %w", sheet, cellRef, err)
			}
		}
	}
	return nil
}
