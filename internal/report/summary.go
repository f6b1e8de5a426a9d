package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-ephemeris/internal/astro"
	"github.com/litescript/ls-ephemeris/internal/frame"
	"github.com/litescript/ls-ephemeris/internal/state"
)

// ClockLayout is how local time is shown everywhere: 15:04:05 | 01-02-2006.
const ClockLayout = "15:04:05 | 01-02-2006"

// Row is one labelled value in a summary section.
type Row struct {
	Label string
	Value string
}

// Section is a titled group of rows.
type Section struct {
	Title string
	Rows  []Row
}

// LocationRows describes the observer.
func LocationRows(f *frame.Frame) []Row {
	rows := []Row{
		{"Current Time", f.LocalTime.Format(ClockLayout)},
	}
	if f.Location.Name != "" {
		rows = append(rows, Row{"Place", f.Location.Name})
	}
	return append(rows,
		Row{"Latitude", fmt.Sprintf("%.4f°", f.Location.Coordinate.Latitude)},
		Row{"Longitude", fmt.Sprintf("%.4f°", f.Location.Coordinate.Longitude)},
		Row{"Timezone", f.Location.ZoneName()},
	)
}

// SunRows describes the solar state and today's events.
func SunRows(f *frame.Frame) []Row {
	eph := f.Ephemeris
	sun := eph.Sun
	ev := f.SunEvents
	return []Row{
		{"Julian Day", fmt.Sprintf("%.5f", eph.JulianDay)},
		{"Declination", FormatDegrees(sun.Declination)},
		{"Hour Angle", FormatDegrees(sun.HourAngle)},
		{"Ecliptic Longitude", FormatDegrees(sun.EclipticLongitude)},
		{"RA / Dec", fmt.Sprintf("%s / %s", FormatHours(sun.RightAscension), FormatDegrees(sun.ApparentDec))},
		{"Distance", fmt.Sprintf("%.6f AU (%.0f km)", sun.DistanceAU, astro.AUToKm(sun.DistanceAU))},
		{"Light Time", FormatLightTime(sun.LightTime)},
		{"Position", fmt.Sprintf("(%.4f, %.4f, %.4f) AU", sun.Position.X, sun.Position.Y, sun.Position.Z)},
		{"Altitude / Azimuth", fmt.Sprintf("%s / %s", FormatDegrees(sun.Horizontal.Altitude), FormatDegrees(sun.Horizontal.Azimuth))},
		{"Sky", sun.Condition.String()},
		{"Sunrise / Sunset", fmt.Sprintf("%s / %s", FormatClock(ev.Sunrise), FormatClock(ev.Sunset))},
		{"Solar Noon", FormatClock(ev.SolarNoon)},
		{"Day Length", FormatDayLength(ev.DayLength())},
	}
}

// MoonRows describes the lunar state.
func MoonRows(f *frame.Frame) []Row {
	moon := f.Ephemeris.Moon
	return []Row{
		{"Ecliptic Position", fmt.Sprintf("λ %s  β %s", FormatDegrees(moon.EclipticLongitude), FormatDegrees(moon.EclipticLatitude))},
		{"RA / Dec", fmt.Sprintf("%s / %s", FormatHours(moon.RightAscension), FormatDegrees(moon.Declination))},
		{"Altitude / Azimuth", fmt.Sprintf("%s / %s", FormatDegrees(moon.Horizontal.Altitude), FormatDegrees(moon.Horizontal.Azimuth))},
		{"Phase", fmt.Sprintf("%s (%.3f)", moon.Label, moon.Phase)},
		{"Illumination", fmt.Sprintf("%.1f%%", moon.Illumination)},
		{"Age", fmt.Sprintf("%.1f days", moon.AgeDays)},
		{"Next Full Moon", FormatFullMoon(moon.NextFullMoon)},
	}
}

// Sections returns the three summary sections for a frame.
func Sections(f *frame.Frame) []Section {
	return []Section{
		{Title: "Location Information", Rows: LocationRows(f)},
		{Title: "Solar Information", Rows: SunRows(f)},
		{Title: "Lunar Information", Rows: MoonRows(f)},
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// WriteSummary prints the snapshot as aligned text. styled adds ANSI
// colors and should only be set when w is a terminal.
func WriteSummary(w io.Writer, snap state.Snapshot, styled bool) {
	render := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	if snap.Frame == nil {
		fmt.Fprintln(w, "No ephemeris computed")
		if snap.LastError != nil {
			fmt.Fprintln(w, render(errorStyle, "Error: "+snap.LastError.Error()))
		}
		return
	}

	for i, sec := range Sections(snap.Frame) {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, render(titleStyle, sec.Title))
		fmt.Fprintln(w, strings.Repeat("─", 48))
		for _, r := range sec.Rows {
			fmt.Fprintf(w, "  %s %s\n", render(labelStyle, fmt.Sprintf("%-20s", r.Label)), r.Value)
		}
	}

	if len(snap.Events) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, render(titleStyle, "Events"))
		fmt.Fprintln(w, strings.Repeat("─", 48))
		for _, e := range snap.Events {
			fmt.Fprintf(w, "  %s %-16s %s\n", e.Timestamp.Format("15:04:05"), e.Type, e.Detail)
		}
	}

	if snap.Stale() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, render(errorStyle, "Showing last good frame; latest compute failed: "+snap.LastError.Error()))
	}
}

// FormatDegrees renders an angle with four decimals.
func FormatDegrees(v float64) string {
	return fmt.Sprintf("%.4f°", v)
}

// FormatHours renders an angle in degrees as hours, minutes and seconds of
// right ascension.
func FormatHours(deg float64) string {
	h := astro.NormalizeDegrees(deg) / 15
	hh := int(h)
	mm := int((h - float64(hh)) * 60)
	ss := ((h-float64(hh))*60 - float64(mm)) * 60
	return fmt.Sprintf("%02dh%02dm%04.1fs", hh, mm, ss)
}

// FormatClock renders an event time as HH:MM, or "—" when it does not occur.
func FormatClock(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("15:04")
}

// FormatDayLength renders a daylight duration as "14h 20m".
func FormatDayLength(d time.Duration) string {
	if d <= 0 {
		return "—"
	}
	d = d.Round(time.Minute)
	return fmt.Sprintf("%dh %02dm", int(d.Hours()), int(d.Minutes())%60)
}

// FormatLightTime renders a light travel time as "8m 19s".
func FormatLightTime(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	return fmt.Sprintf("%dm %02ds", int(d.Minutes()), int(d.Seconds())%60)
}

// FormatFullMoon renders the whole-day count to the next full moon.
func FormatFullMoon(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "in 1 day"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}
