package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-ephemeris/internal/astro"
	"github.com/litescript/ls-ephemeris/internal/config"
	"github.com/litescript/ls-ephemeris/internal/frame"
	"github.com/litescript/ls-ephemeris/internal/logging"
	"github.com/litescript/ls-ephemeris/internal/state"
	"github.com/litescript/ls-ephemeris/internal/ui"
)

const phoenixAt = "2024-06-21T12:30:00-07:00"

// execute runs the CLI in an empty working and home directory so no stray
// config file is picked up.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestExport_Stdout(t *testing.T) {
	out, err := execute(t, "export", "--at", phoenixAt,
		"--lat", "33.4484", "--lon", "-112.074", "--name", "Phoenix", "--tz", "UTC")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 2460483.3125, got["julian_day"], 1e-9)

	loc, ok := got["location"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Phoenix", loc["name"])
	assert.Equal(t, "UTC", loc["timezone"])
}

func TestExport_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snap.json")

	_, err := execute(t, "export", path, "--at", phoenixAt, "--lat", "33.4484", "--lon", "-112.074")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"phase_name"`)
}

func TestSummary_Once(t *testing.T) {
	out, err := execute(t, "summary", "--at", phoenixAt,
		"--lat", "33.4484", "--lon", "-112.074", "--tz", "America/Phoenix")
	require.NoError(t, err)

	assert.Contains(t, out, "Solar Information")
	assert.Contains(t, out, "12:30:00 | 06-21-2024")
	assert.NotContains(t, out, "\x1b[", "buffers are not terminals")
}

func TestInvalidLocation(t *testing.T) {
	_, err := execute(t, "summary", "--lat", "95", "--lon", "0")
	assert.True(t, errors.Is(err, astro.ErrInvalidCoordinate), "err = %v", err)
}

func TestInvalidAt(t *testing.T) {
	_, err := execute(t, "export", "--at", "yesterday")
	assert.ErrorContains(t, err, "--at")
}

func TestEnvLocation(t *testing.T) {
	t.Setenv("LSEPHEM_LOCATION_NAME", "Envtown")
	out, err := execute(t, "export", "--at", phoenixAt)
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Envtown"`)
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ephem.toml")

	out, err := execute(t, "config", "init", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	_, err = execute(t, "config", "init", "--path", path)
	assert.ErrorIs(t, err, config.ErrConfigExists)

	out, err = execute(t, "--config", path, "config", "show", "--name", "Flagged")
	require.NoError(t, err)
	assert.Contains(t, out, "# from "+path)
	assert.Regexp(t, `location_name = ['"]Flagged['"]`, out, "flags beat the file")
	assert.Regexp(t, `latitude = ['"]51\.4769['"]`, out)
}

func TestConfigFileLocation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ephem.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
latitude = "-33.8688"
longitude = "151.2093"
location_name = "Sydney"
`), 0o644))

	out, err := execute(t, "--config", path, "export", "--at", phoenixAt)
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Sydney"`)
	assert.Contains(t, out, `"latitude": -33.8688`)
}

func testComputer(t *testing.T, lat float64) *frame.Computer {
	t.Helper()
	at, err := time.Parse(time.RFC3339, phoenixAt)
	require.NoError(t, err)
	loc := frame.Location{Coordinate: astro.GeoCoordinate{Latitude: lat, Longitude: -112.074}, Zone: time.UTC}
	return frame.NewComputer(loc).WithClock(func() time.Time { return at })
}

type recorder struct {
	msgs chan tea.Msg
}

func (r *recorder) send(msg tea.Msg) { r.msgs <- msg }

func (r *recorder) next(t *testing.T) ui.DataUpdateMsg {
	t.Helper()
	select {
	case msg := <-r.msgs:
		upd, ok := msg.(ui.DataUpdateMsg)
		require.True(t, ok, "got %T", msg)
		return upd
	case <-time.After(2 * time.Second):
		t.Fatal("no message from compute loop")
		return ui.DataUpdateMsg{}
	}
}

func TestComputeLoop_Step(t *testing.T) {
	mgr := state.NewManager(state.DefaultConfig())
	rec := &recorder{msgs: make(chan tea.Msg, 4)}
	loop := newComputeLoop(testComputer(t, 33.4484), mgr, rec.send, logging.Discard())

	loop.step()
	upd := rec.next(t)
	require.NotNil(t, upd.Snapshot.Frame)
	assert.Equal(t, 1, upd.Snapshot.Frames)

	// A bad location fails the frame but keeps the previous one.
	good := upd.Snapshot.Frame
	loop.computer = testComputer(t, 123)
	loop.step()
	upd = rec.next(t)
	assert.Same(t, good, upd.Snapshot.Frame)
	assert.ErrorIs(t, upd.Snapshot.LastError, astro.ErrInvalidCoordinate)
	assert.True(t, upd.Snapshot.Stale())
}

func TestComputeLoop_Reconfigure(t *testing.T) {
	cfg := state.DefaultConfig()
	cfg.RefreshInterval = time.Hour
	mgr := state.NewManager(cfg)
	rec := &recorder{msgs: make(chan tea.Msg, 8)}
	loop := newComputeLoop(testComputer(t, 33.4484), mgr, rec.send, logging.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.run(ctx)

	first := rec.next(t)
	require.NotNil(t, first.Snapshot.Frame)

	sydney := frame.Location{Name: "Sydney", Coordinate: astro.GeoCoordinate{Latitude: -33.8688, Longitude: 151.2093}, Zone: time.UTC}
	loop.reconfigure(sydney, 200*time.Millisecond)

	second := rec.next(t)
	require.NotNil(t, second.Snapshot.Frame)
	assert.Equal(t, "Sydney", second.Snapshot.Frame.Location.Name)
	assert.Equal(t, 200*time.Millisecond, mgr.RefreshInterval())

	var moved bool
	for _, e := range second.Snapshot.Events {
		if e.Type == state.EventLocationChange {
			moved = true
		}
	}
	assert.True(t, moved, "events: %v", second.Snapshot.Events)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f))
}

func TestHelpMentionsCommands(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	for _, name := range []string{"summary", "export", "config"} {
		assert.True(t, strings.Contains(out, name), name)
	}
}
