package frame

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-ephemeris/internal/astro"
)

func testLocation() Location {
	return Location{
		Name:       "Phoenix",
		Coordinate: astro.GeoCoordinate{Latitude: 33.4484, Longitude: -112.0740},
		Zone:       time.FixedZone("MST", -7*3600),
	}
}

func TestBuild(t *testing.T) {
	now := time.Date(2024, 6, 21, 19, 30, 0, 0, time.UTC)

	f, err := Build(now, testLocation())
	require.NoError(t, err)

	assert.Equal(t, 12, f.LocalTime.Hour(), "local time should be on the location's clock")
	assert.Equal(t, -7*3600, f.Ephemeris.Time.Offset)
	assert.InDelta(t, 2460483.3125, f.Ephemeris.JulianDay, 1e-9)
	assert.Greater(t, f.Ephemeris.Sun.Horizontal.Altitude, 75.0)
	assert.False(t, f.SunEvents.Sunrise.IsZero())
}

func TestBuild_InvalidCoordinate(t *testing.T) {
	loc := testLocation()
	loc.Coordinate.Latitude = 120

	_, err := Build(time.Now(), loc)
	assert.True(t, errors.Is(err, astro.ErrInvalidCoordinate), "err = %v", err)
}

func TestComputer_PinnedClock(t *testing.T) {
	pinned := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	loc := testLocation()
	loc.Zone = time.UTC

	c := NewComputer(loc).WithClock(func() time.Time { return pinned })
	res := c.Compute()

	require.NoError(t, res.Error)
	assert.Equal(t, 2451545.0, res.Frame.Ephemeris.JulianDay)
	assert.GreaterOrEqual(t, res.Duration, time.Duration(0))

	moved := c.WithLocation(Location{Name: "Greenwich", Zone: time.UTC})
	assert.Equal(t, "Greenwich", moved.Location().Name)
	assert.Equal(t, pinned, moved.clock())
}

func TestLocation_ZoneName(t *testing.T) {
	assert.Equal(t, "MST", testLocation().ZoneName())
	assert.Equal(t, time.Local.String(), Location{}.ZoneName())
}
