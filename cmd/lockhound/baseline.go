package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/accrava/lockhound/internal/engine"
	"github.com/accrava/lockhound/internal/registry"
	"github.com/accrava/lockhound/internal/report"
)

func init() {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Manage the acknowledged-findings baseline",
	}

	update := &cobra.Command{
		Use:   "update [DIRECTORY]",
		Short: "Record the current findings as acknowledged",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			abs, _ := filepath.Abs(dir)

			logger, closeLog, err := newLogger("")
			if err != nil {
				return err
			}
			defer closeLog()

			res, err := engine.Scan(engine.Config{Root: abs, Logger: logger}, registry.Default())
			if err != nil {
				return err
			}
			if err := report.SaveBaseline(report.DefaultBaselineFile, res.Findings); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Baseline updated (%d findings acknowledged).\n", len(res.Findings))
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
	cmd.AddCommand(update)
}
