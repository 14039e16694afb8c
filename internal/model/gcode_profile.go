package model

// GCodeSettings holds the motion parameters for the paint program.
type GCodeSettings struct {
	FeedRate     float64 `json:"feed_rate"`     // paint sweep feed, inches/min
	TravelRate   float64 `json:"travel_rate"`   // feed for steps between sweeps, inches/min
	PaintZ       float64 `json:"paint_z"`       // gun height while painting, inches
	SafeZ        float64 `json:"safe_z"`        // travel height, inches
	PressurePot  bool    `json:"pressure_pot"`  // keep the pressure pot under control of the program
	GCodeProfile string  `json:"gcode_profile"` // Name of the GCode profile to use
}

// GCodeProfile defines a post-processor configuration for different controllers.
type GCodeProfile struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	StartCode []string `json:"start_code"` // Commands at start of file
	EndCode   []string `json:"end_code"`   // Commands at end of file

	GunOn       string `json:"gun_on"`       // Paint gun valve open
	GunOff      string `json:"gun_off"`      // Paint gun valve closed
	PressureOn  string `json:"pressure_on"`  // Pressure pot on, "" if not controlled
	PressureOff string `json:"pressure_off"` // Pressure pot off
	RapidMove   string `json:"rapid_move"`   // G0 or equivalent
	FeedMove    string `json:"feed_move"`    // G1 or equivalent
	Dwell       string `json:"dwell"`        // Dwell after opening the gun, "" to skip

	CommentPrefix string `json:"comment_prefix"`
	CommentSuffix string `json:"comment_suffix"`

	DecimalPlaces int `json:"decimal_places"`
}

// Built-in GCode profiles. All programs run in inches.
var GCodeProfiles = []GCodeProfile{
	{
		Name:          "Grbl",
		Description:   "Grbl with the gun on the flood coolant output, pot not controlled",
		StartCode:     []string{"G90", "G20", "G17"},
		EndCode:       []string{"G0 Z[SafeZ]", "M2"},
		GunOn:         "M8",
		GunOff:        "M9",
		RapidMove:     "G0",
		FeedMove:      "G1",
		Dwell:         "G4 P0.1",
		CommentPrefix: ";",
		DecimalPlaces: 3,
	},
	{
		Name:          "LinuxCNC",
		Description:   "LinuxCNC with the gun and pot on digital outputs 0 and 1",
		StartCode:     []string{"G90", "G20", "G17", "G94"},
		EndCode:       []string{"G0 Z[SafeZ]", "M2"},
		GunOn:         "M64 P0",
		GunOff:        "M65 P0",
		PressureOn:    "M64 P1",
		PressureOff:   "M65 P1",
		RapidMove:     "G0",
		FeedMove:      "G1",
		Dwell:         "G4 P0.1",
		CommentPrefix: "(",
		CommentSuffix: ")",
		DecimalPlaces: 4,
	},
	{
		Name:          "Generic",
		Description:   "Generic standard GCode",
		StartCode:     []string{"G90", "G20"},
		EndCode:       []string{"G0 Z[SafeZ]", "M2"},
		GunOn:         "M3",
		GunOff:        "M5",
		PressureOn:    "M7",
		PressureOff:   "M9",
		RapidMove:     "G0",
		FeedMove:      "G1",
		CommentPrefix: ";",
		DecimalPlaces: 3,
	},
}

// GetProfile returns a GCode profile by name, or the Generic profile if not found.
func GetProfile(name string) GCodeProfile {
	for _, p := range GCodeProfiles {
		if p.Name == name {
			return p
		}
	}
	return GCodeProfiles[len(GCodeProfiles)-1] // Return Generic (last one)
}

// GetProfileNames returns a list of all available profile names.
func GetProfileNames() []string {
	var names []string
	for _, p := range GCodeProfiles {
		names = append(names, p.Name)
	}
	return names
}

func DefaultGCodeSettings() GCodeSettings {
	return GCodeSettings{
		FeedRate:     120.0,
		TravelRate:   200.0,
		PaintZ:       4.0,
		SafeZ:        4.2, // paint height plus travel clearance
		PressurePot:  true,
		GCodeProfile: "Generic",
	}
}
