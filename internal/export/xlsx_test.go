package export

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/traypaint/internal/engine"
	"github.com/piwi3910/traypaint/internal/model"
)

func openTestWorkbook(t *testing.T, plan model.Plan) *excelize.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.xlsx")
	require.NoError(t, ExportXLSX(path, plan))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestExportXLSX_Sheets(t *testing.T) {
	f := openTestWorkbook(t, buildTestPlan(t))
	assert.Equal(t, []string{SheetWaypoints, SheetJob}, f.GetSheetList())
}

func TestExportXLSX_Waypoints(t *testing.T) {
	plan := buildTestPlan(t)
	f := openTestWorkbook(t, plan)

	rows, err := f.GetRows(SheetWaypoints)
	require.NoError(t, err)
	require.Len(t, rows, len(plan.Waypoints)+1)

	assert.Equal(t, []string{"Index", "Kind", "X", "Y"}, rows[0])
	assert.Equal(t, []string{"1", "Start", "20", "21.5"}, rows[1])
	assert.Equal(t, []string{"2", "Sweep", "5.5", "21.5"}, rows[2])
	assert.Equal(t, "Transition", rows[3][1])
	assert.Equal(t, "10", rows[10][0])
}

func TestExportXLSX_HeaderBold(t *testing.T) {
	f := openTestWorkbook(t, buildTestPlan(t))

	styleID, err := f.GetCellStyle(SheetWaypoints, "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
}

func TestExportXLSX_Job(t *testing.T) {
	job := model.DefaultJob()
	job.Grid.ItemSize = 20
	plan, err := engine.NewPlan(job)
	require.NoError(t, err)

	f := openTestWorkbook(t, plan)
	rows, err := f.GetRows(SheetJob)
	require.NoError(t, err)

	values := map[string]string{}
	for _, row := range rows[1:] {
		require.Len(t, row, 2)
		values[row[0]] = row[1]
	}
	assert.Equal(t, plan.ID, values["Plan"])
	assert.Equal(t, "Back", values["Side"])
	assert.Equal(t, "4", values["Columns"])
	assert.Equal(t, "5", values["Rows"])
	assert.Equal(t, "5", values["Sweeps"])
	assert.Contains(t, values["Warning"], "degenerate X spacing")
}

func TestExportXLSX_EmptyPlan(t *testing.T) {
	err := ExportXLSX(filepath.Join(t.TempDir(), "empty.xlsx"), model.Plan{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrEmptyPlan))
}
