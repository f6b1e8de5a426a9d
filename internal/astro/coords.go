package astro

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// GeoCoordinate is an observer position in decimal degrees.
type GeoCoordinate struct {
	Latitude  float64 // degrees, north positive, [-90, 90]
	Longitude float64 // degrees, east positive, [-180, 180]
}

// NewGeoCoordinate validates and returns a coordinate.
func NewGeoCoordinate(lat, lon float64) (GeoCoordinate, error) {
	c := GeoCoordinate{Latitude: lat, Longitude: lon}
	if err := c.Validate(); err != nil {
		return GeoCoordinate{}, err
	}
	return c, nil
}

// ParseCoordinate parses latitude and longitude strings as produced by a
// geolocation lookup or a config file. Non-numeric, non-finite and
// out-of-range values are rejected with ErrInvalidCoordinate; nothing is
// clamped.
func ParseCoordinate(lat, lon string) (GeoCoordinate, error) {
	latV, err := parseDegrees("latitude", lat)
	if err != nil {
		return GeoCoordinate{}, err
	}
	lonV, err := parseDegrees("longitude", lon)
	if err != nil {
		return GeoCoordinate{}, err
	}
	return NewGeoCoordinate(latV, lonV)
}

func parseDegrees(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidCoordinate, field, s)
	}
	return v, nil
}

// Validate checks both axes are finite and within range.
func (c GeoCoordinate) Validate() error {
	switch {
	case math.IsNaN(c.Latitude) || c.Latitude < -90 || c.Latitude > 90:
		return fmt.Errorf("%w: latitude %v outside [-90,90]", ErrInvalidCoordinate, c.Latitude)
	case math.IsNaN(c.Longitude) || c.Longitude < -180 || c.Longitude > 180:
		return fmt.Errorf("%w: longitude %v outside [-180,180]", ErrInvalidCoordinate, c.Longitude)
	}
	return nil
}

func (c GeoCoordinate) String() string {
	ns, ew := "N", "E"
	if c.Latitude < 0 {
		ns = "S"
	}
	if c.Longitude < 0 {
		ew = "W"
	}
	return fmt.Sprintf("%.4f°%s %.4f°%s", math.Abs(c.Latitude), ns, math.Abs(c.Longitude), ew)
}

// Horizontal is an observer-relative sky position.
type Horizontal struct {
	Azimuth  float64 // degrees, 0=N, 90=E, 180=S, 270=W
	Altitude float64 // degrees, 0=horizon, 90=zenith
}

// EquatorialToHorizontal converts geocentric right ascension and declination
// (degrees) to altitude and azimuth for an observer at the given
// astronomical Julian day. Parallax and refraction are ignored.
func EquatorialToHorizontal(raDeg, decDeg float64, obs GeoCoordinate, jd float64) Horizontal {
	lat := degToRad(obs.Latitude)
	dec := degToRad(decDeg)

	// Hour Angle = LST - RA
	ha := degToRad(LocalSiderealTime(jd, obs.Longitude) - raDeg)

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	alt := math.Asin(clampUnit(sinAlt))

	// Azimuth from north through east
	az := math.Atan2(
		-math.Cos(dec)*math.Sin(ha),
		math.Sin(dec)*math.Cos(lat)-math.Cos(dec)*math.Sin(lat)*math.Cos(ha),
	)

	return Horizontal{
		Azimuth:  NormalizeDegrees(radToDeg(az)),
		Altitude: radToDeg(alt),
	}
}

// LocalSiderealTime returns the local mean sidereal time in degrees [0,360).
func LocalSiderealTime(jd, lonDeg float64) float64 {
	return NormalizeDegrees(GreenwichSiderealTime(jd) + lonDeg)
}

// GreenwichSiderealTime returns GMST in degrees [0,360) (IAU 1982).
func GreenwichSiderealTime(jd float64) float64 {
	T := julianCenturies(jd)
	gmst := 280.46061837 +
		360.98564736629*(jd-J2000) +
		0.000387933*T*T -
		T*T*T/38710000.0
	return NormalizeDegrees(gmst)
}

func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
