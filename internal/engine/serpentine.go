package engine

import "github.com/piwi3910/traypaint/internal/model"

// minSweepDistance is the shortest sweep worth emitting for the Up/Down pattern.
const minSweepDistance = 0.001

// GenerateSerpentine walks the grid row by row from the reference slot,
// alternating sweep direction. Rows progress toward negative Y. Even sweeps end
// at the low-X end of the grid, odd sweeps back at the origin side, and each
// sweep but the last is followed by a vertical step at the sweep's ending X.
//
// The result always has 2*Sweeps waypoints: the start, one endpoint per sweep
// and one transition between each pair of sweeps.
func GenerateSerpentine(origin model.Point2D, offset model.GunOffset, sp model.Spacing) []model.Waypoint {
	if sp.Sweeps < 1 {
		return nil
	}

	startX := origin.X + offset.DX
	startY := origin.Y + offset.DY
	lowX := origin.X - float64(sp.Steps-1)*sp.X + offset.DX
	highX := startX

	path := make([]model.Waypoint, 0, 2*sp.Sweeps)
	path = append(path, model.Waypoint{X: startX, Y: startY, Kind: model.WaypointStart})

	for s := 0; s < sp.Sweeps; s++ {
		y := startY - float64(s)*sp.Y

		targetX := highX
		if s%2 == 0 {
			targetX = lowX
		}
		path = append(path, model.Waypoint{X: targetX, Y: y, Kind: model.WaypointSweep})

		if s < sp.Sweeps-1 {
			nextY := startY - float64(s+1)*sp.Y
			path = append(path, model.Waypoint{X: targetX, Y: nextY, Kind: model.WaypointTransition})
		}
	}
	return path
}

// GenerateUpDown walks the grid column by column from the reference slot.
// The first column is swept down, the next up, and so on; columns progress
// toward negative X. A column sweep is skipped when the grid has a single row.
func GenerateUpDown(origin model.Point2D, offset model.GunOffset, sp model.Spacing) []model.Waypoint {
	if sp.Steps < 1 {
		return nil
	}

	x := origin.X + offset.DX
	y := origin.Y + offset.DY
	sweep := float64(sp.Sweeps-1) * sp.Y

	path := []model.Waypoint{{X: x, Y: y, Kind: model.WaypointStart}}
	down := true
	for c := 0; c < sp.Steps; c++ {
		if c > 0 {
			x -= sp.X
			path = append(path, model.Waypoint{X: x, Y: y, Kind: model.WaypointTransition})
		}
		if sweep > minSweepDistance {
			if down {
				y -= sweep
			} else {
				y += sweep
			}
			path = append(path, model.Waypoint{X: x, Y: y, Kind: model.WaypointSweep})
		}
		down = !down
	}
	return path
}
