package alert

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// AltitudeString renders an altitude reading for display, comma-grouped.
// A positive feeder elevation converts the reading from sea level to height
// above ground.
func AltitudeString(alt, elevation int, useMeters bool) string {
	unit := "ft"
	if useMeters {
		unit = "m"
	}

	ref := "MSL"

	if elevation > 0 {
		alt -= elevation
		ref = "AGL"
	}

	return fmt.Sprintf("%s%s %s", humanize.Comma(int64(alt)), unit, ref)
}

// DistanceUnit maps a configured distance unit name to its display suffix.
// Unknown or empty names mean statute miles.
func DistanceUnit(name string) string {
	switch name {
	case "nauticalmile":
		return "nm"
	case "kilometer":
		return "km"
	case "meter":
		return "m"
	default:
		return "mi"
	}
}
