package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-ephemeris/internal/report"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Write the current frame as JSON (use - or omit for stdout)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}

			comp, err := a.computer()
			if err != nil {
				return err
			}
			result := comp.Compute()
			if result.Error != nil {
				return result.Error
			}

			export := report.ExportSnapshot(report.SnapshotOf(result.Frame))
			if path == "-" {
				if err := export.WriteJSON(cmd.OutOrStdout()); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
				return nil
			}

			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create snapshot file: %w", err)
			}
			defer f.Close()
			if err := export.WriteJSON(f); err != nil {
				return fmt.Errorf("write JSON to file: %w", err)
			}
			a.logger.Info("Wrote snapshot to %s", path)
			return nil
		},
	}
}
