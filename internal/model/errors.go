package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGridConfig is returned for grids that cannot hold any item.
	ErrInvalidGridConfig = errors.New("invalid grid config")
	ErrUnknownSide       = errors.New("unknown fixture side")
	ErrUnknownPattern    = errors.New("unknown paint pattern")
	ErrEmptyPlan         = errors.New("plan has no waypoints")
)

// SpacingWarning reports a center-to-center spacing that is zero or negative
// on an axis with more than one item, usually because ItemSize plus Padding
// exceeds the tray extent. It is not fatal.
type SpacingWarning struct {
	Axis    string  `json:"axis"`
	Spacing float64 `json:"spacing"`
}

func (w SpacingWarning) Error() string {
	return fmt.Sprintf("degenerate %s spacing %.3f in: items will overlap or reverse", w.Axis, w.Spacing)
}

// Validate checks the grid for values that make spacing undefined.
func (g GridConfig) Validate() error {
	switch {
	case g.Columns < 1:
		return fmt.Errorf("%w: columns must be at least 1, got %d", ErrInvalidGridConfig, g.Columns)
	case g.Rows < 1:
		return fmt.Errorf("%w: rows must be at least 1, got %d", ErrInvalidGridConfig, g.Rows)
	case g.TrayWidth <= 0 || g.TrayHeight <= 0:
		return fmt.Errorf("%w: tray must be larger than zero, got %.3f x %.3f",
			ErrInvalidGridConfig, g.TrayWidth, g.TrayHeight)
	case g.ItemSize < 0:
		return fmt.Errorf("%w: item size cannot be negative, got %.3f", ErrInvalidGridConfig, g.ItemSize)
	case g.Padding < 0:
		return fmt.Errorf("%w: padding cannot be negative, got %.3f", ErrInvalidGridConfig, g.Padding)
	}
	return nil
}
