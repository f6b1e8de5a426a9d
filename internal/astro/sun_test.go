package astro

import (
	"math"
	"testing"
)

func TestSolarDeclination(t *testing.T) {
	tests := []struct {
		name      string
		dayOfYear float64
		want      float64
		tol       float64
	}{
		{"June solstice", 172, 23.44, 0.3},
		{"December solstice", 355, -23.44, 0.3},
		{"March equinox", 81, 0, 0.5},
		{"September equinox", 265, 0, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SolarDeclination(tt.dayOfYear)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("SolarDeclination(%v) = %.3f°, want %.2f° (±%.2f)",
					tt.dayOfYear, got, tt.want, tt.tol)
			}
		})
	}
}

func TestSolarDeclination_MatchesEquinoxSineForm(t *testing.T) {
	for day := 1.0; day <= 366; day += 0.5 {
		sineForm := AxialTilt * math.Sin(2*math.Pi/365*(day-81.25))
		if got := SolarDeclination(day); math.Abs(got-sineForm) > 1e-9 {
			t.Fatalf("day %v: %v != sine form %v", day, got, sineForm)
		}
	}
}

func TestSolarDeclination_OutOfYearInputs(t *testing.T) {
	for _, day := range []float64{-1000, 0, 367, 1e6, 1e12} {
		got := SolarDeclination(day)
		if math.IsNaN(got) || math.Abs(got) > AxialTilt+1e-9 {
			t.Errorf("SolarDeclination(%v) = %v, want finite within ±%v", day, got, AxialTilt)
		}
	}
}

func TestSolarHourAngle(t *testing.T) {
	tests := []struct {
		name      string
		solarTime float64
		lon       float64
		want      float64
	}{
		{"noon at Greenwich", 12, 0, 0},
		{"evening west", 18, -105, -15},
		{"midnight", 0, 0, -180},
		{"not normalized", 23.5, 170, 342.5},
		{"morning east", 6, 90, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SolarHourAngle(tt.solarTime, tt.lon)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SolarHourAngle(%v, %v) = %v, want %v", tt.solarTime, tt.lon, got, tt.want)
			}
		})
	}
}

func TestSolarEclipticLongitude(t *testing.T) {
	if got := SolarEclipticLongitude(80); math.Abs(got-280.46) > 1e-9 {
		t.Errorf("SolarEclipticLongitude(80) = %v, want 280.46", got)
	}

	// One mean year later the longitude comes back around.
	if got := SolarEclipticLongitude(80 + 365.25); math.Abs(got-280.46) > 1e-9 {
		t.Errorf("SolarEclipticLongitude(445.25) = %v, want 280.46", got)
	}

	// 100 days past the anchor wraps through 360.
	got := SolarEclipticLongitude(80 + 100)
	want := 280.46 + 100*360/365.25 - 360
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("SolarEclipticLongitude(180) = %v, want %v", got, want)
	}
}

func TestSolarEclipticLongitude_Range(t *testing.T) {
	for day := -10 * 365.25; day <= 10*365.25; day += 0.37 {
		got := SolarEclipticLongitude(day)
		if got < 0 || got >= 360 {
			t.Fatalf("SolarEclipticLongitude(%v) = %v, outside [0,360)", day, got)
		}
	}
	for _, day := range []float64{1e7, -1e7, 1e12} {
		got := SolarEclipticLongitude(day)
		if got < 0 || got >= 360 {
			t.Errorf("SolarEclipticLongitude(%v) = %v, outside [0,360)", day, got)
		}
	}
}

func TestSunPosition(t *testing.T) {
	tests := []struct {
		name       string
		ts         Timestamp
		wantRAMin  float64
		wantRAMax  float64
		wantDecMin float64
		wantDecMax float64
	}{
		{
			name:       "Spring Equinox 2024 - Sun near 0h RA, 0° Dec",
			ts:         Timestamp{Year: 2024, Month: 3, Day: 20, Hour: 12},
			wantRAMin:  359,
			wantRAMax:  2,
			wantDecMin: -1,
			wantDecMax: 1,
		},
		{
			name:       "Summer Solstice 2024 - Sun near 6h RA, +23.5° Dec",
			ts:         Timestamp{Year: 2024, Month: 6, Day: 21, Hour: 12},
			wantRAMin:  88,
			wantRAMax:  92,
			wantDecMin: 23,
			wantDecMax: 24,
		},
		{
			name:       "Autumn Equinox 2024 - Sun near 12h RA, 0° Dec",
			ts:         Timestamp{Year: 2024, Month: 9, Day: 22, Hour: 12},
			wantRAMin:  178,
			wantRAMax:  182,
			wantDecMin: -1,
			wantDecMax: 1,
		},
		{
			name:       "Winter Solstice 2024 - Sun near 18h RA, -23.5° Dec",
			ts:         Timestamp{Year: 2024, Month: 12, Day: 21, Hour: 12},
			wantRAMin:  268,
			wantRAMax:  272,
			wantDecMin: -24,
			wantDecMax: -23,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jd, err := JulianDay(tt.ts)
			if err != nil {
				t.Fatal(err)
			}
			pos := SunPosition(jd)

			// Handle RA wrap-around for spring equinox
			var raOK bool
			if tt.wantRAMin > tt.wantRAMax {
				raOK = pos.RightAscension >= tt.wantRAMin || pos.RightAscension <= tt.wantRAMax
			} else {
				raOK = pos.RightAscension >= tt.wantRAMin && pos.RightAscension <= tt.wantRAMax
			}
			if !raOK {
				t.Errorf("RA = %.2f°, want between %.2f° and %.2f°",
					pos.RightAscension, tt.wantRAMin, tt.wantRAMax)
			}
			if pos.Declination < tt.wantDecMin || pos.Declination > tt.wantDecMax {
				t.Errorf("Dec = %.2f°, want between %.2f° and %.2f°",
					pos.Declination, tt.wantDecMin, tt.wantDecMax)
			}
		})
	}
}

func TestSunPosition_Distance(t *testing.T) {
	tests := []struct {
		name string
		ts   Timestamp
		want float64
	}{
		// Perihelion falls in early January, aphelion in early July.
		{"J2000 near perihelion", Timestamp{Year: 2000, Month: 1, Day: 1, Hour: 12}, 0.9833},
		{"Aphelion 2024", Timestamp{Year: 2024, Month: 7, Day: 5, Hour: 5}, 1.0167},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jd, _ := JulianDay(tt.ts)
			pos := SunPosition(jd)
			if math.Abs(pos.DistanceAU-tt.want) > 0.001 {
				t.Errorf("DistanceAU = %.5f, want %.4f (±0.001)", pos.DistanceAU, tt.want)
			}
			if math.Abs(pos.Position.Norm()-pos.DistanceAU) > 1e-12 {
				t.Errorf("|Position| = %.9f, want DistanceAU %.9f", pos.Position.Norm(), pos.DistanceAU)
			}
		})
	}
}

func TestSunPosition_VectorPointsAlongRightAscension(t *testing.T) {
	jd, _ := JulianDay(Timestamp{Year: 2024, Month: 5, Day: 10, Hour: 3})
	pos := SunPosition(jd)

	ra := NormalizeDegrees(radToDeg(math.Atan2(pos.Position.Y, pos.Position.X)))
	if math.Abs(ra-pos.RightAscension) > 1e-6 {
		t.Errorf("vector RA = %.6f°, want %.6f°", ra, pos.RightAscension)
	}
	dec := radToDeg(math.Asin(pos.Position.Z / pos.Position.Norm()))
	if math.Abs(dec-pos.Declination) > 1e-6 {
		t.Errorf("vector Dec = %.6f°, want %.6f°", dec, pos.Declination)
	}
}

func TestSunPosition_Deterministic(t *testing.T) {
	jd := 2460000.25
	if SunPosition(jd) != SunPosition(jd) {
		t.Error("SunPosition is not deterministic")
	}
}
