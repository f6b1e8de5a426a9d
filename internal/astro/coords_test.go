package astro

import (
	"errors"
	"math"
	"testing"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		lat     string
		lon     string
		want    GeoCoordinate
		wantErr bool
	}{
		{name: "Phoenix", lat: "33.4484", lon: "-112.0740", want: GeoCoordinate{33.4484, -112.0740}},
		{name: "whitespace trimmed", lat: " 51.5 ", lon: "\t-0.12\n", want: GeoCoordinate{51.5, -0.12}},
		{name: "poles and antimeridian", lat: "-90", lon: "180", want: GeoCoordinate{-90, 180}},
		{name: "non-numeric latitude", lat: "north", lon: "0", wantErr: true},
		{name: "empty longitude", lat: "0", lon: "", wantErr: true},
		{name: "latitude too large", lat: "91", lon: "0", wantErr: true},
		{name: "longitude too small", lat: "0", lon: "-180.0001", wantErr: true},
		{name: "NaN", lat: "NaN", lon: "0", wantErr: true},
		{name: "infinity", lat: "0", lon: "Inf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoordinate(tt.lat, tt.lon)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCoordinate) {
					t.Fatalf("ParseCoordinate(%q, %q) error = %v, want ErrInvalidCoordinate", tt.lat, tt.lon, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCoordinate(%q, %q) error = %v", tt.lat, tt.lon, err)
			}
			if got != tt.want {
				t.Errorf("ParseCoordinate(%q, %q) = %+v, want %+v", tt.lat, tt.lon, got, tt.want)
			}
		})
	}
}

func TestGeoCoordinateString(t *testing.T) {
	c := GeoCoordinate{Latitude: -33.8688, Longitude: 151.2093}
	if got, want := c.String(), "33.8688°S 151.2093°E"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestGreenwichSiderealTime(t *testing.T) {
	gmst := GreenwichSiderealTime(J2000)
	if math.Abs(gmst-280.46061837) > 1e-6 {
		t.Errorf("GMST at J2000 = %v, want 280.46061837", gmst)
	}

	// One sidereal day is ~3m56s shorter than a solar day, so GMST advances
	// ~0.9856° per solar day.
	next := GreenwichSiderealTime(J2000 + 1)
	if d := NormalizeDegrees(next - gmst); math.Abs(d-0.98564736629) > 1e-6 {
		t.Errorf("GMST daily advance = %v, want 0.9856", d)
	}
}

func TestLocalSiderealTime(t *testing.T) {
	gmst := GreenwichSiderealTime(J2000)
	lst := LocalSiderealTime(J2000, -112.074)
	if math.Abs(lst-NormalizeDegrees(gmst-112.074)) > 1e-9 {
		t.Errorf("LST = %v, want %v", lst, NormalizeDegrees(gmst-112.074))
	}
}

func TestEquatorialToHorizontal(t *testing.T) {
	jd := 2460000.5
	lst := LocalSiderealTime(jd, 0)

	tests := []struct {
		name    string
		ra, dec float64
		obs     GeoCoordinate
		wantAlt float64
		wantAz  float64 // negative skips the azimuth check
	}{
		{
			name:    "celestial pole sits at observer latitude",
			ra:      0,
			dec:     90,
			obs:     GeoCoordinate{Latitude: 40},
			wantAlt: 40,
			wantAz:  -1,
		},
		{
			name:    "transiting object at zenith",
			ra:      lst,
			dec:     35,
			obs:     GeoCoordinate{Latitude: 35},
			wantAlt: 90,
			wantAz:  -1,
		},
		{
			name:    "equator object on meridian is due south",
			ra:      lst,
			dec:     0,
			obs:     GeoCoordinate{Latitude: 40},
			wantAlt: 50,
			wantAz:  180,
		},
		{
			name:    "rising due east",
			ra:      NormalizeDegrees(lst + 90),
			dec:     0,
			obs:     GeoCoordinate{Latitude: 0},
			wantAlt: 0,
			wantAz:  90,
		},
		{
			name:    "setting due west",
			ra:      NormalizeDegrees(lst - 90),
			dec:     0,
			obs:     GeoCoordinate{Latitude: 0},
			wantAlt: 0,
			wantAz:  270,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EquatorialToHorizontal(tt.ra, tt.dec, tt.obs, jd)
			if math.Abs(got.Altitude-tt.wantAlt) > 1e-5 {
				t.Errorf("Altitude = %.6f, want %.6f", got.Altitude, tt.wantAlt)
			}
			if tt.wantAz >= 0 && math.Abs(got.Azimuth-tt.wantAz) > 1e-6 {
				t.Errorf("Azimuth = %.6f, want %.6f", got.Azimuth, tt.wantAz)
			}
			if got.Azimuth < 0 || got.Azimuth >= 360 {
				t.Errorf("Azimuth = %v, outside [0,360)", got.Azimuth)
			}
		})
	}
}
