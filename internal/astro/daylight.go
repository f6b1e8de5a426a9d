package astro

import "time"

const (
	// AU is one astronomical unit in kilometers.
	AU = 149597870.7

	// lightSecondsPerAU is the one-way light time across 1 AU.
	lightSecondsPerAU = 499.004784
)

// AUToKm converts astronomical units to kilometers.
func AUToKm(au float64) float64 {
	return au * AU
}

// LightTime returns the one-way light travel time across au.
func LightTime(au float64) time.Duration {
	return time.Duration(au * lightSecondsPerAU * float64(time.Second))
}

// SkyCondition classifies the sky by the Sun's altitude.
type SkyCondition int

const (
	SkyNight SkyCondition = iota
	SkyAstronomicalTwilight
	SkyNauticalTwilight
	SkyCivilTwilight
	SkyDaylight
)

var skyConditionNames = map[SkyCondition]string{
	SkyNight:                "Night",
	SkyAstronomicalTwilight: "Astronomical Twilight",
	SkyNauticalTwilight:     "Nautical Twilight",
	SkyCivilTwilight:        "Civil Twilight",
	SkyDaylight:             "Daylight",
}

func (c SkyCondition) String() string {
	if name, ok := skyConditionNames[c]; ok {
		return name
	}
	return "Unknown"
}

// SkyConditionFor returns the condition for a solar altitude in degrees.
// Twilight bands are 6° deep below the horizon.
func SkyConditionFor(sunAltitude float64) SkyCondition {
	switch {
	case sunAltitude >= 0:
		return SkyDaylight
	case sunAltitude >= -6:
		return SkyCivilTwilight
	case sunAltitude >= -12:
		return SkyNauticalTwilight
	case sunAltitude >= -18:
		return SkyAstronomicalTwilight
	default:
		return SkyNight
	}
}
