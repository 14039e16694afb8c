// Package engine computes paint paths over a tray's item grid.
package engine

import (
	"fmt"

	"github.com/piwi3910/traypaint/internal/model"
)

// CalculateSpacing derives the center-to-center spacing and sweep/step counts
// for a grid painted from the given side. An axis with a single item has zero
// spacing. Non-positive spacing on an axis with several items is reported as a
// warning and returned unchanged.
func CalculateSpacing(grid model.GridConfig, side model.Side) (model.Spacing, []model.SpacingWarning, error) {
	if err := grid.Validate(); err != nil {
		return model.Spacing{}, nil, err
	}
	if !side.Valid() {
		return model.Spacing{}, nil, fmt.Errorf("%w: %d", model.ErrUnknownSide, int(side))
	}

	usableW := grid.TrayWidth - grid.Padding - grid.ItemSize
	usableH := grid.TrayHeight - grid.Padding - grid.ItemSize

	// Back, Front and Right present the tray unrotated.
	xCount, yCount := grid.Columns, grid.Rows
	if side == model.SideLeft {
		// Tray is presented rotated: rows run across X, columns along Y.
		xCount, yCount = grid.Rows, grid.Columns
	}

	sp := model.Spacing{
		X:      spacingAlong(usableW, xCount),
		Y:      spacingAlong(usableH, yCount),
		Sweeps: grid.Rows,
		Steps:  grid.Columns,
	}

	var warnings []model.SpacingWarning
	if xCount > 1 && sp.X <= 0 {
		warnings = append(warnings, model.SpacingWarning{Axis: "X", Spacing: sp.X})
	}
	if yCount > 1 && sp.Y <= 0 {
		warnings = append(warnings, model.SpacingWarning{Axis: "Y", Spacing: sp.Y})
	}
	return sp, warnings, nil
}

func spacingAlong(usable float64, count int) float64 {
	if count <= 1 {
		return 0
	}
	return usable / float64(count-1)
}
