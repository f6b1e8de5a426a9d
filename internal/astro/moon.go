package astro

import "math"

const (
	// SynodicMonth is the mean new-moon to new-moon period in days.
	SynodicMonth = 29.53058867

	// ReferenceNewMoon is the Julian day of a known new moon (2000-01-06).
	ReferenceNewMoon = 2451550.1
)

// Mean lunar elements: value at n = 0 and daily rate, degrees.
const (
	moonMeanLongitude0 = 218.316
	moonMeanLongitudeR = 13.176396
	moonMeanAnomaly0   = 134.963
	moonMeanAnomalyR   = 13.064993
	moonNodeArgument0  = 93.272
	moonNodeArgumentR  = 13.229350

	moonEquationOfCenter = 6.289
	moonLatitudeAmp      = 5.128
)

// MoonPosition returns the Moon's first-order ecliptic longitude and
// latitude in degrees, n days after the CivilEpochOffset day zero
// (n = DaysSinceEpoch(jd)). Longitude is NOT normalized.
func MoonPosition(n float64) (lonDeg, latDeg float64) {
	L := moonMeanLongitude0 + moonMeanLongitudeR*n
	M := moonMeanAnomaly0 + moonMeanAnomalyR*n
	F := moonNodeArgument0 + moonNodeArgumentR*n

	lonDeg = L + moonEquationOfCenter*math.Sin(degToRad(M))
	latDeg = moonLatitudeAmp * math.Sin(degToRad(F))
	return lonDeg, latDeg
}

// MoonEquatorial returns the Moon's geocentric right ascension in [0,360)
// and declination, degrees. It evaluates the same first-order series as
// MoonPosition with the elements counted from J2000, where their epoch
// values are defined, and rotates by the mean obliquity.
func MoonEquatorial(jd float64) (raDeg, decDeg float64) {
	d := jd - J2000
	lon, lat := MoonPosition(d)
	eps := 23.439291 - 0.0130042*julianCenturies(jd)
	return eclipticToEquatorial(NormalizeDegrees(lon), lat, eps)
}

// MoonPhase returns the fraction of the synodic cycle elapsed since the
// last new moon, in [0, 1). Dates before ReferenceNewMoon wrap forward
// rather than going negative.
func MoonPhase(jd float64) float64 {
	return fraction((jd - ReferenceNewMoon) / SynodicMonth)
}

// MoonAge returns the days elapsed since the last new moon.
func MoonAge(jd float64) float64 {
	return MoonPhase(jd) * SynodicMonth
}

// Illumination returns the lit percentage of the disc for a phase fraction:
// 0 at new moon, 100 at full moon, symmetric across the cycle.
func Illumination(phase float64) float64 {
	return 50 * (1 - math.Cos(2*math.Pi*phase))
}

// FullMoonOffset returns SynodicMonth·(0.5 − phase): the signed days to the
// full moon of the current cycle. It is negative once the cycle is past
// full, i.e. it counts days since that full moon.
func FullMoonOffset(jd float64) float64 {
	return SynodicMonth * (0.5 - MoonPhase(jd))
}

// DaysUntilFullMoon returns the days until the next full moon, always in
// [0, SynodicMonth). Past the midpoint it targets the following cycle.
func DaysUntilFullMoon(jd float64) float64 {
	off := FullMoonOffset(jd)
	if off < 0 {
		off += SynodicMonth
	}
	return off
}

// NextFullMoon returns DaysUntilFullMoon rounded to the nearest whole day.
func NextFullMoon(jd float64) int {
	return int(math.Round(DaysUntilFullMoon(jd)))
}

// LunarPhase is one of the eight named phases.
type LunarPhase int

const (
	PhaseNew LunarPhase = iota
	PhaseWaxingCrescent
	PhaseFirstQuarter
	PhaseWaxingGibbous
	PhaseFull
	PhaseWaningGibbous
	PhaseLastQuarter
	PhaseWaningCrescent
)

var phaseNames = [...]string{
	PhaseNew:            "New Moon",
	PhaseWaxingCrescent: "Waxing Crescent",
	PhaseFirstQuarter:   "First Quarter",
	PhaseWaxingGibbous:  "Waxing Gibbous",
	PhaseFull:           "Full Moon",
	PhaseWaningGibbous:  "Waning Gibbous",
	PhaseLastQuarter:    "Last Quarter",
	PhaseWaningCrescent: "Waning Crescent",
}

func (p LunarPhase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "Unknown"
	}
	return phaseNames[p]
}

// phaseBounds holds the exclusive upper bound of each bucket, in order.
// Lower bounds are inclusive, so a value on a boundary lands in the later
// bucket.
var phaseBounds = [...]struct {
	upper float64
	phase LunarPhase
}{
	{0.03, PhaseNew},
	{0.25, PhaseWaxingCrescent},
	{0.27, PhaseFirstQuarter},
	{0.50, PhaseWaxingGibbous},
	{0.53, PhaseFull},
	{0.75, PhaseWaningGibbous},
	{0.77, PhaseLastQuarter},
	{1.00, PhaseWaningCrescent},
}

// PhaseLabel maps a phase fraction to its named phase. Fractions outside
// [0, 1) are wrapped first.
func PhaseLabel(phase float64) LunarPhase {
	p := fraction(phase)
	for _, b := range phaseBounds {
		if p < b.upper {
			return b.phase
		}
	}
	return PhaseWaningCrescent
}
