// Package state provides thread-safe state management for the application.
package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/litescript/ls-ephemeris/internal/frame"
)

// EventType represents the type of state change event.
type EventType string

const (
	EventPhaseChange    EventType = "PHASE_CHANGE"
	EventSunrise        EventType = "SUNRISE"
	EventSunset         EventType = "SUNSET"
	EventLocationChange EventType = "LOCATION_CHANGE"
)

// Event is a notable transition between two consecutive frames.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Detail    string    `json:"detail"`
}

// Manager holds the last good frame. A failed compute records the error
// but leaves the previous frame in place.
type Manager struct {
	mu sync.RWMutex

	current         *frame.Frame
	lastUpdate      time.Time
	lastError       error
	computeDuration time.Duration
	frames          int
	failures        int

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	refreshInterval time.Duration
}

// Config holds configuration for the state manager.
type Config struct {
	MaxEvents       int
	RefreshInterval time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxEvents:       50,
		RefreshInterval: time.Second,
	}
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	return &Manager{
		maxEvents:       maxEvents,
		events:          make([]Event, 0, maxEvents),
		refreshInterval: cfg.RefreshInterval,
	}
}

// Update records the outcome of one compute cycle.
func (m *Manager) Update(f *frame.Frame, computeDuration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastUpdate = time.Now()
	m.lastError = err
	m.computeDuration = computeDuration

	if err != nil {
		m.failures++
	}
	if f == nil {
		return
	}

	if m.current != nil {
		m.detectEvents(m.current, f)
	}
	m.current = f
	m.frames++
}

// detectEvents compares consecutive frames and logs transitions.
func (m *Manager) detectEvents(prev, next *frame.Frame) {
	at := next.LocalTime

	if prev.Location.Coordinate != next.Location.Coordinate || prev.Location.Name != next.Location.Name {
		m.addEvent(Event{
			Type:      EventLocationChange,
			Timestamp: at,
			Detail:    fmt.Sprintf("%s (%s)", next.Location.Name, next.Location.Coordinate),
		})
		// Transitions across a location jump are not real sky events.
		return
	}

	if p, n := prev.Ephemeris.Moon.Label, next.Ephemeris.Moon.Label; p != n {
		m.addEvent(Event{
			Type:      EventPhaseChange,
			Timestamp: at,
			Detail:    fmt.Sprintf("%s → %s", p, n),
		})
	}

	prevAlt := prev.Ephemeris.Sun.Horizontal.Altitude
	nextAlt := next.Ephemeris.Sun.Horizontal.Altitude
	switch {
	case prevAlt < 0 && nextAlt >= 0:
		m.addEvent(Event{Type: EventSunrise, Timestamp: at, Detail: "sun above horizon"})
	case prevAlt >= 0 && nextAlt < 0:
		m.addEvent(Event{Type: EventSunset, Timestamp: at, Detail: "sun below horizon"})
	}
}

// addEvent adds an event to the ring buffer.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Frame           *frame.Frame
	LastUpdate      time.Time
	LastError       error
	ComputeDuration time.Duration
	Frames          int
	Failures        int
	Events          []Event
}

// Stale reports whether the latest compute failed and an older frame is
// being shown.
func (s Snapshot) Stale() bool {
	return s.LastError != nil && s.Frame != nil
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Snapshot{
		Frame:           m.current,
		LastUpdate:      m.lastUpdate,
		LastError:       m.lastError,
		ComputeDuration: m.computeDuration,
		Frames:          m.frames,
		Failures:        m.failures,
		Events:          m.getEventsOrdered(),
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	// If buffer isn't full yet, just copy
	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		result[i] = m.events[(m.eventWriteAt+i)%m.maxEvents]
	}
	return result
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// RefreshInterval returns the configured refresh interval.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshInterval
}

// SetRefreshInterval updates the refresh interval.
func (m *Manager) SetRefreshInterval(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshInterval = d
}

// HasData returns true once at least one frame was computed.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}
