package astro

import "math"

// NormalizeDegrees maps any finite angle into [0, 360).
func NormalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// -1e-15 + 360 rounds to exactly 360.
	if a >= 360 {
		a -= 360
	}
	return a
}

// NormalizeSignedDegrees maps any finite angle into [-180, 180).
func NormalizeSignedDegrees(a float64) float64 {
	return NormalizeDegrees(a+180) - 180
}

// fraction returns x - floor(x), always in [0, 1) for finite x.
func fraction(x float64) float64 {
	f := x - math.Floor(x)
	if f >= 1 {
		f = 0
	}
	return f
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

func sinDeg(deg float64) float64 { return math.Sin(degToRad(deg)) }
func cosDeg(deg float64) float64 { return math.Cos(degToRad(deg)) }
