package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/litescript/ls-ephemeris/internal/config"
	"github.com/litescript/ls-ephemeris/internal/logging"
	"github.com/litescript/ls-ephemeris/internal/state"
	"github.com/litescript/ls-ephemeris/internal/ui"
)

// runTUI starts the live display. Logs would corrupt the screen, so they
// are dropped unless --log-file is set.
func (a *app) runTUI(cmd *cobra.Command, _ []string) error {
	comp, err := a.computer()
	if err != nil {
		return err
	}
	if a.logFile == nil {
		a.logger = logging.Discard()
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	stateCfg := state.DefaultConfig()
	stateCfg.RefreshInterval = a.cfg.Refresh
	stateMgr := state.NewManager(stateCfg)

	p := tea.NewProgram(ui.New(stateMgr), tea.WithAltScreen())

	loop := newComputeLoop(comp, stateMgr, p.Send, a.logger)
	go loop.run(ctx)

	watching := config.Watch(a.v, func(cfg config.Config, err error, ev fsnotify.Event) {
		a.logger.Info("Config changed: %s", ev.Name)
		if err != nil {
			a.logger.Warn("Config reload failed: %v", err)
			p.Send(ui.ErrorMsg{Error: err})
			return
		}
		loc, err := cfg.Location()
		if err != nil {
			a.logger.Warn("Config reload rejected: %v", err)
			p.Send(ui.ErrorMsg{Error: fmt.Errorf("config reload: %w", err)})
			return
		}
		loop.reconfigure(loc, cfg.Refresh)
		p.Send(ui.LocationMsg{Location: loc})
	})
	if watching {
		a.logger.Debug("Watching %s for changes", a.v.ConfigFileUsed())
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
