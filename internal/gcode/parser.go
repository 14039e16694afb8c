package gcode

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/piwi3910/traypaint/internal/model"
)

// MoveType represents the type of toolpath movement in a paint program.
type MoveType int

const (
	MoveRapid  MoveType = iota // G0: rapid positioning, gun closed
	MoveSpray                  // G1 in XY with the gun open
	MoveTravel                 // G1 in XY with the gun closed
	MoveZ                      // Z-only move (approach or lift)
)

// GCodeMove represents a single parsed movement from GCode.
type GCodeMove struct {
	Type     MoveType
	FromX    float64
	FromY    float64
	FromZ    float64
	ToX      float64
	ToY      float64
	ToZ      float64
	FeedRate float64
}

var coordRe = regexp.MustCompile(`([XYZF])([-]?\d+\.?\d*)`)

// ParseGCode parses a paint program into structured moves. It tracks absolute
// position and the gun state switched by the profile's GunOn/GunOff codes.
func ParseGCode(code string, profile model.GCodeProfile) []GCodeMove {
	var moves []GCodeMove

	curX, curY, curZ := 0.0, 0.0, 0.0
	curFeed := 0.0
	gunOn := false

	gunOnCode := strings.ToUpper(profile.GunOn)
	gunOffCode := strings.ToUpper(profile.GunOff)

	for _, line := range strings.Split(code, "\n") {
		line = stripComments(line)
		if line == "" {
			continue
		}
		upper := strings.ToUpper(line)

		switch {
		case gunOnCode != "" && upper == gunOnCode:
			gunOn = true
			continue
		case gunOffCode != "" && upper == gunOffCode:
			gunOn = false
			continue
		}

		isRapid := false
		isFeed := false
		if strings.HasPrefix(upper, "G0 ") || strings.HasPrefix(upper, "G00 ") || upper == "G0" || upper == "G00" {
			isRapid = true
		} else if strings.HasPrefix(upper, "G1 ") || strings.HasPrefix(upper, "G01 ") || upper == "G1" || upper == "G01" {
			isFeed = true
		}
		if !isRapid && !isFeed {
			continue
		}

		newX, newY, newZ, newFeed := curX, curY, curZ, curFeed
		hasXY := false
		for _, m := range coordRe.FindAllStringSubmatch(upper, -1) {
			val, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				continue
			}
			switch m[1] {
			case "X":
				newX = val
				hasXY = true
			case "Y":
				newY = val
				hasXY = true
			case "Z":
				newZ = val
			case "F":
				newFeed = val
			}
		}

		moves = append(moves, GCodeMove{
			Type:     classifyMove(isRapid, gunOn, hasXY),
			FromX:    curX,
			FromY:    curY,
			FromZ:    curZ,
			ToX:      newX,
			ToY:      newY,
			ToZ:      newZ,
			FeedRate: newFeed,
		})

		curX, curY, curZ, curFeed = newX, newY, newZ, newFeed
	}

	return moves
}

// stripComments removes semicolon and parenthetical comments.
func stripComments(line string) string {
	line = strings.TrimSpace(line)
	if idx := strings.Index(line, ";"); idx >= 0 {
		line = line[:idx]
	}
	if idx := strings.Index(line, "("); idx >= 0 {
		if end := strings.LastIndex(line, ")"); end > idx {
			line = line[:idx] + line[end+1:]
		} else {
			line = line[:idx]
		}
	}
	return strings.TrimSpace(line)
}

// classifyMove determines the MoveType from the words on the line. A line
// with an X or Y word is an XY move even when it ends where it started, so a
// zero-length sweep with the gun open still counts as spray.
func classifyMove(isRapid, gunOn, hasXY bool) MoveType {
	switch {
	case !hasXY:
		return MoveZ
	case isRapid:
		return MoveRapid
	case gunOn:
		return MoveSpray
	default:
		return MoveTravel
	}
}

// Summary counts parsed moves by type.
type Summary struct {
	Rapid          int
	Spray          int
	Travel         int
	Z              int
	SprayDistance  float64
	TravelDistance float64
}

// Summarize tallies moves and their XY lengths.
func Summarize(moves []GCodeMove) Summary {
	var s Summary
	for _, m := range moves {
		d := math.Hypot(m.ToX-m.FromX, m.ToY-m.FromY)
		switch m.Type {
		case MoveRapid:
			s.Rapid++
		case MoveSpray:
			s.Spray++
			s.SprayDistance += d
		case MoveTravel:
			s.Travel++
			s.TravelDistance += d
		case MoveZ:
			s.Z++
		}
	}
	return s
}
