package model

import "gonum.org/v1/gonum/spatial/r2"

// PathStats summarizes the motion in a plan.
type PathStats struct {
	Sweeps         int     `json:"sweeps"`
	Transitions    int     `json:"transitions"`
	SprayDistance  float64 `json:"spray_distance"`  // inches travelled with the gun on
	TravelDistance float64 `json:"travel_distance"` // inches travelled with the gun off
}

// TotalDistance returns the full path length after the start point.
func (s PathStats) TotalDistance() float64 {
	return s.SprayDistance + s.TravelDistance
}

// Stats walks the waypoints and accumulates segment lengths by the kind of
// waypoint each segment ends at.
func (p Plan) Stats() PathStats {
	var st PathStats
	for i := 1; i < len(p.Waypoints); i++ {
		from := r2.Vec{X: p.Waypoints[i-1].X, Y: p.Waypoints[i-1].Y}
		to := r2.Vec{X: p.Waypoints[i].X, Y: p.Waypoints[i].Y}
		d := r2.Norm(r2.Sub(to, from))

		switch p.Waypoints[i].Kind {
		case WaypointSweep:
			st.Sweeps++
			st.SprayDistance += d
		case WaypointTransition:
			st.Transitions++
			st.TravelDistance += d
		default:
			st.TravelDistance += d
		}
	}
	return st
}
