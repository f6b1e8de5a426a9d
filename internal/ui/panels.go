package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-ephemeris/internal/astro"
	"github.com/litescript/ls-ephemeris/internal/frame"
	"github.com/litescript/ls-ephemeris/internal/report"
	"github.com/litescript/ls-ephemeris/internal/state"
)

const (
	// wideLayout is the terminal width at which panels sit side by side.
	wideLayout    = 150
	panelWidth    = 46
	labelWidth    = 14
	barWidth      = 20
	maxEventLines = 5
)

var (
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5A442"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F5A442"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4C51BF")).
			Padding(0, 1).
			Width(panelWidth)
)

func renderPanel(title string, lines []string) string {
	return panelStyle.Render(titleStyle.Render(title) + "\n" + strings.Join(lines, "\n"))
}

func row(label, value string) string {
	return labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, label)) + " " + valueStyle.Render(value)
}

// shortLabels keeps panel rows narrow; report rows use the long form.
var shortLabels = map[string]string{
	"Ecliptic Longitude": "Ecl. Longitude",
	"Ecliptic Position":  "Ecliptic",
	"Altitude / Azimuth": "Alt / Az",
	"Sunrise / Sunset":   "Rise / Set",
}

func rowsToLines(rows []report.Row) []string {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		label := r.Label
		if short, ok := shortLabels[label]; ok {
			label = short
		}
		lines = append(lines, row(label, r.Value))
	}
	return lines
}

func locationLines(f *frame.Frame) []string {
	return rowsToLines(report.LocationRows(f))
}

func solarLines(f *frame.Frame) []string {
	return rowsToLines(report.SunRows(f))
}

func lunarLines(f *frame.Frame) []string {
	moon := f.Ephemeris.Moon
	lines := []string{
		row("", phaseGlyph(moon.Label)+" "+moon.Label.String()),
		row("", renderIlluminationBar(moon.Illumination, barWidth)),
	}
	return append(lines, rowsToLines(report.MoonRows(f))...)
}

func eventLines(events []state.Event, max int) []string {
	if len(events) == 0 {
		return []string{mutedStyle.Render("No events yet")}
	}
	if len(events) > max {
		events = events[len(events)-max:]
	}
	lines := make([]string, 0, len(events))
	for _, e := range events {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			mutedStyle.Render(e.Timestamp.Format("15:04:05")),
			accentStyle.Render(string(e.Type)),
			e.Detail))
	}
	return lines
}

// renderIlluminationBar draws pct (0-100) as a bracketed bar of width cells.
func renderIlluminationBar(pct float64, width int) string {
	filled := int(pct/100*float64(width) + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func phaseGlyph(p astro.LunarPhase) string {
	glyphs := []string{"🌑", "🌒", "🌓", "🌔", "🌕", "🌖", "🌗", "🌘"}
	if int(p) < 0 || int(p) >= len(glyphs) {
		return "?"
	}
	return glyphs[p]
}

func describeLocation(loc frame.Location) string {
	if loc.Name == "" {
		return loc.Coordinate.String()
	}
	return fmt.Sprintf("%s (%s)", loc.Name, loc.Coordinate)
}
