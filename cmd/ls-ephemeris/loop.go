package main

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-ephemeris/internal/frame"
	"github.com/litescript/ls-ephemeris/internal/logging"
	"github.com/litescript/ls-ephemeris/internal/state"
	"github.com/litescript/ls-ephemeris/internal/ui"
)

// computeLoop recomputes a frame every refresh interval and pushes the
// result into state and the display.
type computeLoop struct {
	mu       sync.Mutex
	computer *frame.Computer

	state  *state.Manager
	send   func(tea.Msg)
	logger *logging.Logger
	reset  chan struct{}
}

func newComputeLoop(c *frame.Computer, stateMgr *state.Manager, send func(tea.Msg), logger *logging.Logger) *computeLoop {
	return &computeLoop{
		computer: c,
		state:    stateMgr,
		send:     send,
		logger:   logger.With("compute"),
		reset:    make(chan struct{}, 1),
	}
}

func (l *computeLoop) run(ctx context.Context) {
	l.step()

	ticker := time.NewTicker(l.state.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("Compute loop shutting down")
			return
		case <-ticker.C:
			l.step()
		case <-l.reset:
			ticker.Reset(l.state.RefreshInterval())
			l.step()
		}
	}
}

// step computes one frame. A failed frame is logged and recorded; state
// keeps showing the last good one.
func (l *computeLoop) step() {
	l.mu.Lock()
	c := l.computer
	l.mu.Unlock()

	result := c.Compute()
	if result.Error != nil {
		l.logger.Error("Compute failed: %v", result.Error)
		l.state.Update(nil, result.Duration, result.Error)
		l.send(ui.DataUpdateMsg{Snapshot: l.state.Snapshot()})
		return
	}

	moon := result.Frame.Ephemeris.Moon
	l.logger.Debug("Frame JD %.5f: sun dec %.4f°, moon %s (%.1f%%) in %v",
		result.Frame.Ephemeris.JulianDay, result.Frame.Ephemeris.Sun.Declination,
		moon.Label, moon.Illumination, result.Duration)

	l.state.Update(result.Frame, result.Duration, nil)
	l.send(ui.DataUpdateMsg{Snapshot: l.state.Snapshot()})
}

// reconfigure swaps the observer and refresh interval, then recomputes
// immediately.
func (l *computeLoop) reconfigure(loc frame.Location, refresh time.Duration) {
	l.mu.Lock()
	l.computer = l.computer.WithLocation(loc)
	l.mu.Unlock()

	l.state.SetRefreshInterval(refresh)
	select {
	case l.reset <- struct{}{}:
	default:
	}
}
