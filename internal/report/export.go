// Package report renders frames for headless output: a text summary and a
// JSON snapshot.
package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/litescript/ls-ephemeris/internal/frame"
	"github.com/litescript/ls-ephemeris/internal/state"
)

// SnapshotExport is the JSON-serializable representation of a frame.
type SnapshotExport struct {
	ComputedAt time.Time      `json:"computed_at"`
	LocalTime  time.Time      `json:"local_time"`
	Location   LocationExport `json:"location"`
	JulianDay  float64        `json:"julian_day"`
	DayOfYear  float64        `json:"day_of_year"`
	SolarTime  float64        `json:"solar_time_hours"`
	Sun        SunExport      `json:"sun"`
	Moon       MoonExport     `json:"moon"`
	Events     []state.Event  `json:"events,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// LocationExport is a JSON-friendly observer.
type LocationExport struct {
	Name      string  `json:"name,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// SunExport is a JSON-friendly solar state with daily events.
type SunExport struct {
	Declination       float64    `json:"declination_deg"`
	HourAngle         float64    `json:"hour_angle_deg"`
	EclipticLongitude float64    `json:"ecliptic_longitude_deg"`
	DistanceAU        float64    `json:"distance_au"`
	Position          [3]float64 `json:"position_au"`
	RightAscension    float64    `json:"right_ascension_deg"`
	ApparentDec       float64    `json:"apparent_declination_deg"`
	Altitude          float64    `json:"altitude_deg"`
	Azimuth           float64    `json:"azimuth_deg"`
	Sky               string     `json:"sky"`
	LightTimeSeconds  float64    `json:"light_time_s"`
	Sunrise           *time.Time `json:"sunrise,omitempty"`
	SolarNoon         *time.Time `json:"solar_noon,omitempty"`
	Sunset            *time.Time `json:"sunset,omitempty"`
}

// MoonExport is a JSON-friendly lunar state.
type MoonExport struct {
	EclipticLongitude float64 `json:"ecliptic_longitude_deg"`
	EclipticLatitude  float64 `json:"ecliptic_latitude_deg"`
	RightAscension    float64 `json:"right_ascension_deg"`
	Declination       float64 `json:"declination_deg"`
	Altitude          float64 `json:"altitude_deg"`
	Azimuth           float64 `json:"azimuth_deg"`
	Phase             float64 `json:"phase"`
	PhaseName         string  `json:"phase_name"`
	Illumination      float64 `json:"illumination_pct"`
	AgeDays           float64 `json:"age_days"`
	DaysUntilFull     float64 `json:"days_until_full"`
	NextFullMoon      int     `json:"next_full_moon_days"`
}

// ExportSnapshot converts a state snapshot to an exportable form.
func ExportSnapshot(snap state.Snapshot) *SnapshotExport {
	export := &SnapshotExport{
		ComputedAt: snap.LastUpdate,
		Events:     snap.Events,
	}
	if snap.LastError != nil {
		export.Error = snap.LastError.Error()
	}
	if snap.Frame == nil {
		return export
	}

	f := snap.Frame
	eph := f.Ephemeris
	sun := eph.Sun
	moon := eph.Moon

	export.LocalTime = f.LocalTime
	export.Location = LocationExport{
		Name:      f.Location.Name,
		Latitude:  eph.Coordinate.Latitude,
		Longitude: eph.Coordinate.Longitude,
		Timezone:  f.Location.ZoneName(),
	}
	export.JulianDay = eph.JulianDay
	export.DayOfYear = eph.DayOfYear
	export.SolarTime = eph.SolarTime
	export.Sun = SunExport{
		Declination:       sun.Declination,
		HourAngle:         sun.HourAngle,
		EclipticLongitude: sun.EclipticLongitude,
		DistanceAU:        sun.DistanceAU,
		Position:          [3]float64{sun.Position.X, sun.Position.Y, sun.Position.Z},
		RightAscension:    sun.RightAscension,
		ApparentDec:       sun.ApparentDec,
		Altitude:          sun.Horizontal.Altitude,
		Azimuth:           sun.Horizontal.Azimuth,
		Sky:               sun.Condition.String(),
		LightTimeSeconds:  sun.LightTime.Seconds(),
		Sunrise:           optionalTime(f.SunEvents.Sunrise),
		SolarNoon:         optionalTime(f.SunEvents.SolarNoon),
		Sunset:            optionalTime(f.SunEvents.Sunset),
	}
	export.Moon = MoonExport{
		EclipticLongitude: moon.EclipticLongitude,
		EclipticLatitude:  moon.EclipticLatitude,
		RightAscension:    moon.RightAscension,
		Declination:       moon.Declination,
		Altitude:          moon.Horizontal.Altitude,
		Azimuth:           moon.Horizontal.Azimuth,
		Phase:             moon.Phase,
		PhaseName:         moon.Label.String(),
		Illumination:      moon.Illumination,
		AgeDays:           moon.AgeDays,
		DaysUntilFull:     moon.DaysUntilFull,
		NextFullMoon:      moon.NextFullMoon,
	}
	return export
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// WriteJSON writes the snapshot as JSON to the given writer.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// SnapshotOf wraps a single frame for one-shot output that never went
// through a state manager.
func SnapshotOf(f *frame.Frame) state.Snapshot {
	return state.Snapshot{Frame: f, LastUpdate: time.Now(), Frames: 1}
}
