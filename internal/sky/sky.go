// Package sky adds observer-local solar events (rise, set, transit) on top
// of the ephemeris engine using the suncalc library.
package sky

import (
	"math"
	"time"

	"github.com/sixdouglas/suncalc"

	"github.com/litescript/ls-ephemeris/internal/astro"
)

// SunEvents holds the Sun's daily events for one observer and date.
// Zero times mean the event does not happen that day (polar day or night).
type SunEvents struct {
	Sunrise   time.Time
	SolarNoon time.Time
	Sunset    time.Time
	Dawn      time.Time // civil
	Dusk      time.Time // civil

	// Altitude and Azimuth are suncalc's live position in degrees, azimuth
	// measured from north so it lines up with astro.Horizontal.
	Altitude float64
	Azimuth  float64
}

// DayLength returns the sunrise-to-sunset duration, or zero when either
// event is missing.
func (e SunEvents) DayLength() time.Duration {
	if e.Sunrise.IsZero() || e.Sunset.IsZero() {
		return 0
	}
	return e.Sunset.Sub(e.Sunrise)
}

// IsDaylight reports whether t falls between sunrise and sunset.
func (e SunEvents) IsDaylight(t time.Time) bool {
	if e.Sunrise.IsZero() || e.Sunset.IsZero() {
		return e.Altitude > 0
	}
	return !t.Before(e.Sunrise) && t.Before(e.Sunset)
}

// SunEventsAt returns today's solar events at the observer, in t's zone.
func SunEventsAt(t time.Time, obs astro.GeoCoordinate) SunEvents {
	times := suncalc.GetTimes(t, obs.Latitude, obs.Longitude)
	pos := suncalc.GetPosition(t, obs.Latitude, obs.Longitude)

	loc := t.Location()
	return SunEvents{
		Sunrise:   valid(times["sunrise"].Value, loc),
		SolarNoon: valid(times["solarNoon"].Value, loc),
		Sunset:    valid(times["sunset"].Value, loc),
		Dawn:      valid(times["dawn"].Value, loc),
		Dusk:      valid(times["dusk"].Value, loc),
		Altitude:  pos.Altitude * 180 / math.Pi,
		// suncalc measures azimuth from south, westward positive.
		Azimuth: astro.NormalizeDegrees(pos.Azimuth*180/math.Pi + 180),
	}
}

// valid converts suncalc's result into loc, mapping the sentinel returned
// for events that never occur to the zero time.
func valid(v time.Time, loc *time.Location) time.Time {
	if v.IsZero() || v.Year() < 1900 {
		return time.Time{}
	}
	return v.In(loc)
}
