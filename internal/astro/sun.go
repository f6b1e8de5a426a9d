package astro

import "math"

const (
	// AxialTilt is Earth's obliquity used by the first-order declination model.
	AxialTilt = 23.44

	// vernalEquinoxDay anchors the linear ecliptic longitude model.
	vernalEquinoxDay = 80.0

	// longitudeAtEquinox is the Sun's mean longitude on vernalEquinoxDay.
	longitudeAtEquinox = 280.46

	daysPerYear      = 365.0
	tropicalYearDays = 365.25
)

// SolarDeclination returns the Sun's declination in degrees for a 1-based,
// possibly fractional, day of year:
//
//	δ = −23.44° · cos(2π/365 · (day + 10))
//
// The +10 days reference the December solstice; the expression equals the
// sine form anchored at the March equinox, 23.44° · sin(2π/365 · (day − 81.25)).
// Any finite input yields a result; out-of-year values are not rejected.
func SolarDeclination(dayOfYear float64) float64 {
	return -AxialTilt * math.Cos(2*math.Pi/daysPerYear*(dayOfYear+10))
}

// SolarHourAngle returns (solarTime − 12)·15 + longitude in degrees, where
// solarTime is local clock hours in [0, 24). The result is not normalized;
// pass it through NormalizeSignedDegrees or NormalizeDegrees as needed.
func SolarHourAngle(solarTime, longitudeDeg float64) float64 {
	return (solarTime-12.0)*15.0 + longitudeDeg
}

// SolarEclipticLongitude returns the Sun's ecliptic longitude in [0, 360)
// from a linear model anchored at the vernal equinox (day 80, 280.46°)
// advancing 360/365.25 degrees per day.
func SolarEclipticLongitude(dayOfYear float64) float64 {
	return NormalizeDegrees(longitudeAtEquinox + (360.0/tropicalYearDays)*(dayOfYear-vernalEquinoxDay))
}

// Vec3 is a geocentric rectangular vector.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// SolarPosition is the Sun's apparent place from the low-precision
// Astronomical Almanac ephemeris.
type SolarPosition struct {
	MeanAnomaly       float64 // degrees, [0,360)
	EquationOfCenter  float64 // degrees
	TrueLongitude     float64 // degrees, [0,360)
	ApparentLongitude float64 // degrees, [0,360), aberration and nutation applied
	RightAscension    float64 // degrees, [0,360)
	Declination       float64 // degrees
	Obliquity         float64 // degrees, true obliquity of the ecliptic
	DistanceAU        float64 // Earth–Sun distance in AU
	Position          Vec3    // geocentric equatorial coordinates in AU
}

// SunPosition computes the Sun's apparent equatorial place and distance for
// an astronomical Julian day. Accuracy is about 0.01° in longitude and
// 1e-4 AU in distance, plenty for display.
func SunPosition(jd float64) SolarPosition {
	T := julianCenturies(jd)

	// Mean longitude of the Sun (degrees)
	L0 := NormalizeDegrees(280.46646 + 36000.76983*T + 0.0003032*T*T)

	// Mean anomaly of the Sun (degrees)
	M := NormalizeDegrees(357.52911 + 35999.05029*T - 0.0001537*T*T)
	Mrad := degToRad(M)

	// Equation of center (degrees)
	C := (1.914602 - 0.004817*T - 0.000014*T*T) * math.Sin(Mrad)
	C += (0.019993 - 0.000101*T) * math.Sin(2*Mrad)
	C += 0.000289 * math.Sin(3*Mrad)

	trueLon := NormalizeDegrees(L0 + C)
	trueAnomaly := M + C

	// Radius vector from the orbit eccentricity
	e := 0.016708634 - 0.000042037*T - 0.0000001267*T*T
	R := 1.000001018 * (1 - e*e) / (1 + e*cosDeg(trueAnomaly))

	// Aberration and nutation in longitude
	omega := 125.04 - 1934.136*T
	appLon := NormalizeDegrees(trueLon - 0.00569 - 0.00478*sinDeg(omega))

	eps0 := 23.439291 - 0.0130042*T - 0.00000016*T*T + 0.000000504*T*T*T
	eps := eps0 + 0.00256*cosDeg(omega)

	ra, dec := eclipticToEquatorial(appLon, 0, eps)

	lonRad := degToRad(appLon)
	epsRad := degToRad(eps)

	return SolarPosition{
		MeanAnomaly:       M,
		EquationOfCenter:  C,
		TrueLongitude:     trueLon,
		ApparentLongitude: appLon,
		RightAscension:    ra,
		Declination:       dec,
		Obliquity:         eps,
		DistanceAU:        R,
		Position: Vec3{
			X: R * math.Cos(lonRad),
			Y: R * math.Sin(lonRad) * math.Cos(epsRad),
			Z: R * math.Sin(lonRad) * math.Sin(epsRad),
		},
	}
}

// eclipticToEquatorial rotates ecliptic (λ, β) into right ascension in
// [0,360) and declination, all in degrees, for obliquity eps.
func eclipticToEquatorial(lonDeg, latDeg, epsDeg float64) (raDeg, decDeg float64) {
	lon := degToRad(lonDeg)
	lat := degToRad(latDeg)
	eps := degToRad(epsDeg)

	ra := math.Atan2(
		math.Sin(lon)*math.Cos(eps)-math.Tan(lat)*math.Sin(eps),
		math.Cos(lon),
	)
	dec := math.Asin(math.Sin(lat)*math.Cos(eps) + math.Cos(lat)*math.Sin(eps)*math.Sin(lon))

	return NormalizeDegrees(radToDeg(ra)), radToDeg(dec)
}
