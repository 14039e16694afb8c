package model

// Side identifies which face of the placement fixture is being painted.
// Values match the fixture's side indices.
type Side int

const (
	SideBack  Side = iota // Side 0, rotation 0°
	SideRight             // Side 1, rotation 90°
	SideFront             // Side 2, rotation 180°
	SideLeft              // Side 3, rotation 270°
)

func (s Side) String() string {
	switch s {
	case SideBack:
		return "Back"
	case SideRight:
		return "Right"
	case SideFront:
		return "Front"
	case SideLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// RotationDegrees returns the tray rotation used to present this side to the gun.
func (s Side) RotationDegrees() int {
	return int(s) * 90
}

// Valid reports whether s is one of the four fixture sides.
func (s Side) Valid() bool {
	return s >= SideBack && s <= SideLeft
}

// Pattern selects the traversal used to cover the item grid.
type Pattern int

const (
	PatternUpDown   Pattern = 0  // Column sweeps along Y, stepping along X
	PatternSideways Pattern = 90 // Row sweeps along X, stepping along Y
)

func (p Pattern) String() string {
	switch p {
	case PatternUpDown:
		return "Up/Down"
	case PatternSideways:
		return "Sideways"
	default:
		return "Unknown"
	}
}

// Point2D represents a 2D coordinate in inches.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GunOffset is the fixed offset from an item-grid coordinate to the TCP.
type GunOffset struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// GridConfig describes the item slots on the tray.
type GridConfig struct {
	Columns    int     `json:"columns"`
	Rows       int     `json:"rows"`
	TrayWidth  float64 `json:"tray_width"`  // inches
	TrayHeight float64 `json:"tray_height"` // inches
	ItemSize   float64 `json:"item_size"`   // inches, square items
	Padding    float64 `json:"padding"`     // inches
}

// Spacing holds center-to-center distances and the sweep/step counts
// derived from a GridConfig.
type Spacing struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Sweeps int     `json:"sweeps"`
	Steps  int     `json:"steps"`
}

// WaypointKind says what kind of motion ends at a waypoint.
type WaypointKind int

const (
	WaypointStart      WaypointKind = iota // First TCP position, reached by a rapid move
	WaypointSweep                          // End of a painting sweep
	WaypointTransition                     // End of a non-painting step between sweeps
)

func (k WaypointKind) String() string {
	switch k {
	case WaypointStart:
		return "Start"
	case WaypointSweep:
		return "Sweep"
	case WaypointTransition:
		return "Transition"
	default:
		return "Unknown"
	}
}

// Waypoint is one TCP position. Its index in a path is its visit order.
type Waypoint struct {
	X    float64      `json:"x"`
	Y    float64      `json:"y"`
	Kind WaypointKind `json:"kind"`
}

// Point returns the waypoint's coordinates.
func (w Waypoint) Point() Point2D {
	return Point2D{X: w.X, Y: w.Y}
}

// Rect is an axis-aligned rectangle in machine coordinates, where the top
// edge has the larger Y.
type Rect struct {
	TopLeft     Point2D `json:"top_left"`
	BottomRight Point2D `json:"bottom_right"`
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.BottomRight.X - r.TopLeft.X
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.TopLeft.Y - r.BottomRight.Y
}

// Job is the complete, immutable input of one path generation.
type Job struct {
	Name    string     `json:"name"`
	Side    Side       `json:"side"`
	Pattern Pattern    `json:"pattern"`
	Grid    GridConfig `json:"grid"`
	Origin  Point2D    `json:"origin"` // absolute position of the reference item slot
	Offset  GunOffset  `json:"offset"`
}

// DefaultJob returns the fixture's stock Back-side configuration.
func DefaultJob() Job {
	return Job{
		Name:    "Back side tray",
		Side:    SideBack,
		Pattern: PatternSideways,
		Grid: GridConfig{
			Columns:    4,
			Rows:       5,
			TrayWidth:  18.0,
			TrayHeight: 26.0,
			ItemSize:   3.0,
			Padding:    0.5,
		},
		Origin: Point2D{X: 20.0, Y: 20.0},
		Offset: GunOffset{DX: 0.0, DY: 1.5},
	}
}

// Plan is the result of one generation pass over a Job.
type Plan struct {
	ID        string           `json:"id"`
	Job       Job              `json:"job"`
	Spacing   Spacing          `json:"spacing"`
	Waypoints []Waypoint       `json:"waypoints"`
	Bounds    Rect             `json:"bounds"` // item-grid rectangle
	Warnings  []SpacingWarning `json:"warnings,omitempty"`
}

// Start returns the first waypoint. The plan must not be empty.
func (p Plan) Start() Waypoint {
	return p.Waypoints[0]
}

// End returns the last waypoint. The plan must not be empty.
func (p Plan) End() Waypoint {
	return p.Waypoints[len(p.Waypoints)-1]
}

// Extent returns the rectangle enclosing every waypoint and the item grid.
// Bounds are inverted when spacing is negative; the extent never is.
func (p Plan) Extent() Rect {
	b := p.Bounds
	ext := Rect{
		TopLeft: Point2D{
			X: min(b.TopLeft.X, b.BottomRight.X),
			Y: max(b.TopLeft.Y, b.BottomRight.Y),
		},
		BottomRight: Point2D{
			X: max(b.TopLeft.X, b.BottomRight.X),
			Y: min(b.TopLeft.Y, b.BottomRight.Y),
		},
	}
	for _, w := range p.Waypoints {
		if w.X < ext.TopLeft.X {
			ext.TopLeft.X = w.X
		}
		if w.X > ext.BottomRight.X {
			ext.BottomRight.X = w.X
		}
		if w.Y > ext.TopLeft.Y {
			ext.TopLeft.Y = w.Y
		}
		if w.Y < ext.BottomRight.Y {
			ext.BottomRight.Y = w.Y
		}
	}
	return ext
}
