// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-ephemeris/internal/frame"
	"github.com/litescript/ls-ephemeris/internal/state"
	"github.com/litescript/ls-ephemeris/internal/version"
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time

	// AnimTickMsg drives the footer spinner.
	AnimTickMsg time.Time

	// DataUpdateMsg signals a new frame (or a failed compute) is in state.
	DataUpdateMsg struct {
		Snapshot state.Snapshot
	}

	// ErrorMsg signals an error outside the compute loop, e.g. a bad
	// config reload.
	ErrorMsg struct {
		Error error
	}

	// LocationMsg announces that the observer changed.
	LocationMsg struct {
		Location frame.Location
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	state *state.Manager

	width      int
	height     int
	ready      bool
	animTick   int
	showEvents bool
	statusMsg  string
	lastErr    error

	snapshot state.Snapshot
}

// New creates a new root UI model.
func New(stateMgr *state.Manager) Model {
	return Model{
		state:      stateMgr,
		showEvents: true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), animTickCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "e":
			m.showEvents = !m.showEvents
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case TickMsg:
		cmds = append(cmds, tickCmd())
		if m.state != nil {
			m.snapshot = m.state.Snapshot()
		}

	case AnimTickMsg:
		cmds = append(cmds, animTickCmd())
		m.animTick++

	case DataUpdateMsg:
		m.snapshot = msg.Snapshot

	case LocationMsg:
		m.statusMsg = "Location changed: " + describeLocation(msg.Location)
		m.lastErr = nil

	case ErrorMsg:
		m.lastErr = msg.Error
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.renderHeader() + "\n" + m.renderContent() + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	title := "  ☾ ls-ephemeris"
	var b strings.Builder
	b.WriteString("\n")
	runes := []rune(title)
	for col, r := range runes {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(gradientColor(col, len(runes))))
		b.WriteString(style.Render(string(r)))
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  Sun & Moon · live ephemeris | v%s", version.Version)))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderContent() string {
	f := m.snapshot.Frame
	if f == nil {
		return "  " + m.renderShimmerText("Computing first frame...")
	}

	loc := renderPanel("Location", locationLines(f))
	sun := renderPanel("Sun", solarLines(f))
	moon := renderPanel("Moon", lunarLines(f))

	var body string
	if m.width >= wideLayout {
		body = lipgloss.JoinHorizontal(lipgloss.Top, loc, " ", sun, " ", moon)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, loc, sun, moon)
	}

	if m.showEvents {
		body = lipgloss.JoinVertical(lipgloss.Left, body, renderPanel("Events", eventLines(m.snapshot.Events, maxEventLines)))
	}
	return body
}

func (m Model) renderFooter() string {
	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.animTick%len(spinnerFrames)]

	var status string
	switch {
	case m.lastErr != nil:
		status = errorStyle.Render("ERROR: " + m.lastErr.Error())
	case m.snapshot.LastError != nil:
		status = errorStyle.Render("ERROR: " + m.snapshot.LastError.Error())
	case !m.snapshot.LastUpdate.IsZero():
		status = accentStyle.Render(spinner) + mutedStyle.Render(fmt.Sprintf(" frame %d", m.snapshot.Frames))
		if m.snapshot.ComputeDuration > 0 {
			status += mutedStyle.Render(" (" + m.snapshot.ComputeDuration.Round(time.Microsecond).String() + ")")
		}
	default:
		status = accentStyle.Render(spinner) + " " + m.renderShimmerText("Waiting for data...")
	}

	help := mutedStyle.Render("q: quit | e: events")
	footer := "  " + status + "  " + mutedStyle.Render("|") + "  " + help

	if m.statusMsg != "" {
		footer += "\n  " + mutedStyle.Render(m.statusMsg)
	}
	return footer
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}

// SendDataUpdate creates a command that sends a data update message.
func SendDataUpdate(snapshot state.Snapshot) tea.Cmd {
	return func() tea.Msg {
		return DataUpdateMsg{Snapshot: snapshot}
	}
}

// SendError creates a command that sends an error message.
func SendError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Error: err}
	}
}

// renderShimmerText renders text with a subtle moving shine effect.
func (m Model) renderShimmerText(text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	pos := m.animTick % (len(runes) + 8)

	var result strings.Builder
	for i, r := range runes {
		dist := i - pos + 4
		if dist < 0 {
			dist = -dist
		}

		var hex string
		switch {
		case dist <= 1:
			hex = "#F5D68A"
		case dist <= 3:
			hex = "#C9A95C"
		default:
			hex = "#7A6A45"
		}
		result.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(string(r)))
	}
	return result.String()
}

// gradientColor returns a hex color for a column of the title, sweeping
// from dawn amber to night indigo.
func gradientColor(col, width int) string {
	if width <= 1 {
		width = 2
	}
	t := float64(col) / float64(width-1)

	r := 245 + t*(76-245)
	g := 158 + t*(81-158)
	b := 66 + t*(191-66)

	return fmt.Sprintf("#%02X%02X%02X", clampByte(r), clampByte(g), clampByte(b))
}

func clampByte(v float64) int {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return int(v)
	}
}
