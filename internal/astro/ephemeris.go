// Package astro is the ephemeris engine: pure functions turning a civil
// timestamp and an observer position into solar and lunar quantities.
//
// Angles are degrees in and out. Each exported function states whether it
// normalizes its result; the raw hour angle and raw lunar longitude are
// left unnormalized on purpose so callers can see the accumulated value.
// Nothing here holds state, so every function is safe for concurrent use.
package astro

import (
	"fmt"
	"math"
	"time"
)

// SolarState is the Sun's computed state for one instant.
type SolarState struct {
	Declination       float64       // first-order declination from day of year, degrees
	HourAngle         float64       // degrees, normalized to [-180,180)
	EclipticLongitude float64       // linear model, degrees, [0,360)
	DistanceAU        float64       // Earth–Sun distance, AU
	Position          Vec3          // geocentric equatorial, AU
	RightAscension    float64       // apparent, degrees, [0,360)
	ApparentDec       float64       // apparent declination, degrees
	Horizontal        Horizontal    // observer altitude/azimuth
	Condition         SkyCondition  // daylight or twilight band at the observer
	LightTime         time.Duration // one-way, at DistanceAU
}

// LunarState is the Moon's computed state for one instant.
type LunarState struct {
	EclipticLongitude float64    // degrees, normalized to [0,360)
	EclipticLatitude  float64    // degrees
	RightAscension    float64    // degrees, [0,360)
	Declination       float64    // degrees
	Horizontal        Horizontal // observer altitude/azimuth
	Phase             float64    // fraction of the synodic cycle, [0,1)
	Illumination      float64    // lit percentage, [0,100]
	Label             LunarPhase
	AgeDays           float64 // days since new moon
	DaysUntilFull     float64 // always forward, [0, SynodicMonth)
	NextFullMoon      int     // DaysUntilFull rounded to whole days
}

// Ephemeris is one complete frame for a timestamp and observer.
type Ephemeris struct {
	Time       Timestamp
	Coordinate GeoCoordinate
	JulianDay  float64 // astronomical, noon-aligned, UTC
	DayOfYear  float64 // local, 1-based, fractional
	SolarTime  float64 // local clock hours
	Sun        SolarState
	Moon       LunarState
}

// Compute validates its inputs, derives the Julian day once and runs the
// solar and lunar models. Every output field is checked for NaN/Inf.
func Compute(ts Timestamp, coord GeoCoordinate) (Ephemeris, error) {
	if err := coord.Validate(); err != nil {
		return Ephemeris{}, err
	}
	jd, err := JulianDay(ts)
	if err != nil {
		return Ephemeris{}, err
	}

	doy := ts.DayOfYear()
	solarTime := ts.ClockHours()

	eph := Ephemeris{
		Time:       ts,
		Coordinate: coord,
		JulianDay:  jd,
		DayOfYear:  doy,
		SolarTime:  solarTime,
		Sun:        computeSun(jd, doy, solarTime, coord),
		Moon:       computeMoon(jd, coord),
	}

	if err := eph.checkFinite(); err != nil {
		return Ephemeris{}, err
	}
	return eph, nil
}

func computeSun(jd, doy, solarTime float64, coord GeoCoordinate) SolarState {
	pos := SunPosition(jd)
	horiz := EquatorialToHorizontal(pos.RightAscension, pos.Declination, coord, jd)
	return SolarState{
		Declination:       SolarDeclination(doy),
		HourAngle:         NormalizeSignedDegrees(SolarHourAngle(solarTime, coord.Longitude)),
		EclipticLongitude: SolarEclipticLongitude(doy),
		DistanceAU:        pos.DistanceAU,
		Position:          pos.Position,
		RightAscension:    pos.RightAscension,
		ApparentDec:       pos.Declination,
		Horizontal:        horiz,
		Condition:         SkyConditionFor(horiz.Altitude),
		LightTime:         LightTime(pos.DistanceAU),
	}
}

func computeMoon(jd float64, coord GeoCoordinate) LunarState {
	lon, lat := MoonPosition(DaysSinceEpoch(jd))
	ra, dec := MoonEquatorial(jd)
	phase := MoonPhase(jd)

	return LunarState{
		EclipticLongitude: NormalizeDegrees(lon),
		EclipticLatitude:  lat,
		RightAscension:    ra,
		Declination:       dec,
		Horizontal:        EquatorialToHorizontal(ra, dec, coord, jd),
		Phase:             phase,
		Illumination:      Illumination(phase),
		Label:             PhaseLabel(phase),
		AgeDays:           phase * SynodicMonth,
		DaysUntilFull:     DaysUntilFullMoon(jd),
		NextFullMoon:      NextFullMoon(jd),
	}
}

type namedValue struct {
	name  string
	value float64
}

func (e Ephemeris) fields() []namedValue {
	return []namedValue{
		{"julian_day", e.JulianDay},
		{"day_of_year", e.DayOfYear},
		{"solar_time", e.SolarTime},
		{"sun.declination", e.Sun.Declination},
		{"sun.hour_angle", e.Sun.HourAngle},
		{"sun.ecliptic_longitude", e.Sun.EclipticLongitude},
		{"sun.distance_au", e.Sun.DistanceAU},
		{"sun.position.x", e.Sun.Position.X},
		{"sun.position.y", e.Sun.Position.Y},
		{"sun.position.z", e.Sun.Position.Z},
		{"sun.right_ascension", e.Sun.RightAscension},
		{"sun.apparent_declination", e.Sun.ApparentDec},
		{"sun.altitude", e.Sun.Horizontal.Altitude},
		{"sun.azimuth", e.Sun.Horizontal.Azimuth},
		{"moon.ecliptic_longitude", e.Moon.EclipticLongitude},
		{"moon.ecliptic_latitude", e.Moon.EclipticLatitude},
		{"moon.right_ascension", e.Moon.RightAscension},
		{"moon.declination", e.Moon.Declination},
		{"moon.altitude", e.Moon.Horizontal.Altitude},
		{"moon.azimuth", e.Moon.Horizontal.Azimuth},
		{"moon.phase", e.Moon.Phase},
		{"moon.illumination", e.Moon.Illumination},
		{"moon.age_days", e.Moon.AgeDays},
		{"moon.days_until_full", e.Moon.DaysUntilFull},
	}
}

func (e Ephemeris) checkFinite() error {
	for _, f := range e.fields() {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s = %v", ErrNonFiniteResult, f.name, f.value)
		}
	}
	return nil
}
