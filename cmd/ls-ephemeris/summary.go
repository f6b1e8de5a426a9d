package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/ls-ephemeris/internal/frame"
	"github.com/litescript/ls-ephemeris/internal/report"
	"github.com/litescript/ls-ephemeris/internal/state"
)

func newSummaryCmd(a *app) *cobra.Command {
	var watch time.Duration

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the current Sun and Moon state as text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			comp, err := a.computer()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			return runSummary(ctx, out, isTerminal(out), comp, watch, a)
		},
	}
	cmd.Flags().DurationVar(&watch, "watch", 0, "repeat at this interval (e.g. 30s) until interrupted")
	return cmd
}

// runSummary prints one frame, or one per interval when watch is set. In
// watch mode a failed frame is reported and the loop carries on.
func runSummary(ctx context.Context, out io.Writer, styled bool, comp *frame.Computer, watch time.Duration, a *app) error {
	stateMgr := state.NewManager(state.DefaultConfig())
	logger := a.logger.With("summary")

	outputOnce := func() error {
		result := comp.Compute()
		stateMgr.Update(result.Frame, result.Duration, result.Error)
		if result.Error != nil {
			return result.Error
		}
		logger.Debug("Computed frame in %v", result.Duration)
		report.WriteSummary(out, stateMgr.Snapshot(), styled)
		return nil
	}

	if watch <= 0 {
		return outputOnce()
	}

	if err := outputOnce(); err != nil {
		logger.Error("%v", err)
	}

	ticker := time.NewTicker(watch)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			fmt.Fprintln(out)
			if err := outputOnce(); err != nil {
				logger.Error("%v", err)
			}
		}
	}
}

// isTerminal reports whether w is a terminal, so styling only reaches
// interactive output.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
