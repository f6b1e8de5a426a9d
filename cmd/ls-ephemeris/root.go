package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/litescript/ls-ephemeris/internal/config"
	"github.com/litescript/ls-ephemeris/internal/frame"
	"github.com/litescript/ls-ephemeris/internal/logging"
	"github.com/litescript/ls-ephemeris/internal/version"
)

// app carries what every command resolves before it runs.
type app struct {
	v       *viper.Viper
	cfgFile string
	at      string

	cfg     config.Config
	logger  *logging.Logger
	logFile *os.File
}

// flagKeys maps persistent flags onto config keys.
var flagKeys = map[string]string{
	"lat":       "latitude",
	"lon":       "longitude",
	"name":      "location_name",
	"tz":        "timezone",
	"refresh":   "refresh",
	"log-level": "log_level",
	"log-file":  "log_file",
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "ls-ephemeris",
		Short: "Live Sun and Moon ephemeris in the terminal",
		Long: `ls-ephemeris computes solar declination, hour angle, ecliptic longitude and
distance, plus lunar ecliptic position, phase and illumination, for an observer
and refreshes them live. Location comes from flags, LSEPHEM_* environment
variables, or .ls-ephemeris.toml.`,
		Version:       version.Version,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
		RunE: a.runTUI,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default .ls-ephemeris.toml in cwd or home)")
	pf.StringVar(&a.at, "at", "", "compute for a fixed instant (RFC3339) instead of the wall clock")
	pf.String("lat", "", "observer latitude in degrees, north positive")
	pf.String("lon", "", "observer longitude in degrees, east positive")
	pf.String("name", "", "display name for the location")
	pf.String("tz", "", "IANA timezone for local time (default: system local)")
	pf.Duration("refresh", time.Second, "refresh interval (100ms to 1m)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-file", "", "write logs to this file (the live display discards logs otherwise)")

	for flag, key := range flagKeys {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(
		newSummaryCmd(a),
		newExportCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup reads config and builds the logger. Commands that need a location
// resolve it themselves, so `config` subcommands work with a bad one.
func (a *app) setup(stderr io.Writer) error {
	if err := config.Init(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	out := stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logFile = f
		out = f
	}
	a.logger = logging.NewWithOutput(logging.ParseLevel(cfg.LogLevel), out)

	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("Using config file %s", used)
	}
	return nil
}

func (a *app) close() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

// computer builds a frame computer for the configured location, pinned to
// --at when given.
func (a *app) computer() (*frame.Computer, error) {
	loc, err := a.cfg.Location()
	if err != nil {
		return nil, err
	}
	c := frame.NewComputer(loc)

	if a.at != "" {
		at, err := time.Parse(time.RFC3339, a.at)
		if err != nil {
			return nil, fmt.Errorf("--at: %w", err)
		}
		c = c.WithClock(func() time.Time { return at })
	}
	return c, nil
}
