// Package frame assembles one display frame: the ephemeris for an instant
// and observer plus the observer's solar events.
package frame

import (
	"time"

	"github.com/litescript/ls-ephemeris/internal/astro"
	"github.com/litescript/ls-ephemeris/internal/sky"
)

// Location is an already-resolved observer: where, and which clock to read.
type Location struct {
	Name       string
	Coordinate astro.GeoCoordinate
	Zone       *time.Location
}

// ZoneName returns the IANA name of the zone, or "Local" when unset.
func (l Location) ZoneName() string {
	if l.Zone == nil {
		return time.Local.String()
	}
	return l.Zone.String()
}

// In returns t on the location's clock.
func (l Location) In(t time.Time) time.Time {
	if l.Zone == nil {
		return t.Local()
	}
	return t.In(l.Zone)
}

// Frame is an immutable computed snapshot.
type Frame struct {
	Location  Location
	LocalTime time.Time
	Ephemeris astro.Ephemeris
	SunEvents sky.SunEvents
}

// Build computes a frame for now at loc.
func Build(now time.Time, loc Location) (*Frame, error) {
	local := loc.In(now)

	eph, err := astro.Compute(astro.FromTime(local), loc.Coordinate)
	if err != nil {
		return nil, err
	}

	return &Frame{
		Location:  loc,
		LocalTime: local,
		Ephemeris: eph,
		SunEvents: sky.SunEventsAt(local, loc.Coordinate),
	}, nil
}

// Result is the outcome of one compute cycle.
type Result struct {
	Frame    *Frame
	Duration time.Duration
	Error    error
}

// Computer builds frames for a fixed location against a clock.
type Computer struct {
	loc   Location
	clock func() time.Time
}

// NewComputer returns a Computer reading the wall clock.
func NewComputer(loc Location) *Computer {
	return &Computer{loc: loc, clock: time.Now}
}

// WithClock replaces the clock, e.g. to pin frames to a fixed instant.
func (c *Computer) WithClock(clock func() time.Time) *Computer {
	return &Computer{loc: c.loc, clock: clock}
}

// WithLocation returns a Computer for a different observer.
func (c *Computer) WithLocation(loc Location) *Computer {
	return &Computer{loc: loc, clock: c.clock}
}

// Location returns the observer this computer builds frames for.
func (c *Computer) Location() Location {
	return c.loc
}

// Compute builds one frame and times it.
func (c *Computer) Compute() Result {
	start := time.Now()
	f, err := Build(c.clock(), c.loc)
	return Result{Frame: f, Duration: time.Since(start), Error: err}
}
