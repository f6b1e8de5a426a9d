package astro

import "math"

// CivilEpochOffset is the Julian day at which the proleptic Gregorian
// "year 0, day 0" of the day-count polynomial aligns.
const CivilEpochOffset = 1721013.5

// J2000 is the Julian day of 2000-01-01 12:00 UTC.
const J2000 = 2451545.0

// JulianDay converts a timestamp to an astronomical (noon-aligned) Julian
// day. The timestamp is shifted to UTC first so the result names the same
// instant regardless of the caller's zone.
//
// The day count uses
//
//	367·Y − ⌊7·(Y + ⌊(M+9)/12⌋)/4⌋ + ⌊275·M/9⌋ + D + 1721013.5 + hours/24
//
// which needs no January/February shift and matches the Gregorian calendar
// from March 1900 through February 2100. Outside that window it drifts by
// the skipped century leap days but stays monotonic.
func JulianDay(ts Timestamp) (float64, error) {
	if err := ts.Validate(); err != nil {
		return 0, err
	}
	return julianDayUTC(ts.UTC()), nil
}

func julianDayUTC(u Timestamp) float64 {
	y := float64(u.Year)
	m := float64(u.Month)
	d := float64(u.Day)

	seconds := float64(u.Second) + float64(u.Nanosecond)/1e9
	dayFrac := (float64(u.Hour) + (float64(u.Minute)+seconds/60)/60) / 24

	return 367*y -
		math.Floor(7*(y+math.Floor((m+9)/12))/4) +
		math.Floor(275*m/9) +
		d + CivilEpochOffset + dayFrac
}

// DaysSinceEpoch returns the day count n = jd − CivilEpochOffset used as the
// time argument of the lunar mean elements.
func DaysSinceEpoch(jd float64) float64 {
	return jd - CivilEpochOffset
}

// julianCenturies returns Julian centuries elapsed since J2000.
func julianCenturies(jd float64) float64 {
	return (jd - J2000) / 36525.0
}
