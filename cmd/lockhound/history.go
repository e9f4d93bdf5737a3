package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/accrava/lockhound/internal/audit"
)

func init() {
	var limit int
	cmd := &cobra.Command{
		Use:   "history [DIRECTORY]",
		Short: "Show past scan records from the audit journal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			abs, _ := filepath.Abs(dir)

			records, err := audit.NewJournal(abs).History()
			if err != nil {
				return fmt.Errorf("no scan history for %s: %w", abs, err)
			}
			if limit > 0 && len(records) > limit {
				records = records[:limit]
			}
			for _, r := range records {
				fmt.Fprintf(os.Stdout, "%s  scanned=%d skipped=%d entries=%d findings=%d new=%d (%s)\n",
					r.Timestamp.Format("2006-01-02 15:04:05"),
					r.FilesScanned, r.FilesSkipped, r.Entries, r.Findings, r.NewFindings, r.Duration)
				for _, f := range r.TopFindings {
					fmt.Fprintf(os.Stdout, "    %s@%s  %s  %s\n", f.Name, f.Version, f.Kind, f.File)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "show at most N records (0 = all)")
	rootCmd.AddCommand(cmd)
}
