package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/accrava/lockhound/internal/audit"
	"github.com/accrava/lockhound/internal/config"
	"github.com/accrava/lockhound/internal/engine"
	"github.com/accrava/lockhound/internal/registry"
	"github.com/accrava/lockhound/internal/report"
	"github.com/accrava/lockhound/internal/types"
)

var (
	flagThreads    int
	flagMaxBytes   int64
	flagExclude    string
	flagList       string
	flagCSV        string
	flagJSON       bool
	flagLogFile    string
	flagStaged     bool
	flagHistory    int
	flagNoBaseline bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan [DIRECTORY]",
		Short: "Scan a directory tree for compromised lockfile entries",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().IntVar(&flagThreads, "threads", 0, "parse files concurrently with N workers (0 = sequential)")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "skip lockfiles larger than this (0 = no limit)")
	cmd.Flags().StringVar(&flagExclude, "exclude-file", "", "gitignore-syntax exclusion file (default <root>/.lockhoundignore)")
	cmd.Flags().StringVar(&flagList, "list", "", "replace the embedded match list with name@version lines from a file")
	cmd.Flags().StringVar(&flagCSV, "csv", "", "write a CSV report to this path")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "emit findings as JSON on stdout")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "append logger output to this file")
	cmd.Flags().BoolVar(&flagStaged, "staged", false, "also scan staged lockfile blobs")
	cmd.Flags().IntVar(&flagHistory, "history", 0, "also scan lockfiles in the last N commits (0 = off)")
	cmd.Flags().BoolVar(&flagNoBaseline, "no-baseline", false, "report every finding, ignoring the baseline")
}

func runScan(_ *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	abs, _ := filepath.Abs(dir)

	// CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}

	logFile := pickString(flagLogFile, lcfg.LogFile, gcfg.LogFile)
	logger, closeLog, err := newLogger(logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	reg := registry.Default()
	if list := pickString(flagList, lcfg.ListFile, gcfg.ListFile); list != "" {
		if reg, err = registry.LoadFile(list); err != nil {
			return err
		}
	}
	logger.Debug("match list loaded", "entries", reg.Len())

	cfg := engine.Config{
		Root:           abs,
		Threads:        pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
		MaxBytes:       pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		ExcludeFile:    pickString(flagExclude, lcfg.ExcludeFile, gcfg.ExcludeFile),
		Staged:         flagStaged,
		HistoryCommits: flagHistory,
		Logger:         logger,
	}
	res, err := engine.Scan(cfg, reg)
	if err != nil {
		return err
	}

	newFindings := res.Findings
	if !pickBool(flagNoBaseline, lcfg.NoBaseline, gcfg.NoBaseline) {
		if base, err := report.LoadBaseline(report.DefaultBaselineFile); err == nil {
			newFindings = report.FilterNew(res.Findings, base)
			logger.Debug("baseline applied", "suppressed", len(res.Findings)-len(newFindings))
		}
	}
	if newFindings == nil {
		newFindings = []types.Finding{} // no `null` in JSON
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newFindings); err != nil {
			return err
		}
	} else {
		report.PrintTable(os.Stdout, newFindings, report.PrintOptions{
			NoColor:  pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor),
			Summary:  res.Summary,
			Duration: res.Duration,
		})
	}

	if csvPath := pickString(flagCSV, lcfg.CSVFile, gcfg.CSVFile); csvPath != "" {
		if err := report.SaveCSV(csvPath, newFindings); err != nil {
			return err
		}
		logger.Debug("csv report written", "path", csvPath)
	}

	if err := audit.NewJournal(abs).Append(audit.NewRecord(abs, res.Summary, newFindings, res.Duration)); err != nil {
		logger.Debug("audit journal not updated", "err", err)
	}

	if report.ShouldFail(newFindings) {
		os.Exit(1)
	}
	return nil
}

func pickString(flag string, local, global *string) string {
	if flag != "" {
		return flag
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return ""
}

func pickInt(flag int, local, global *int) int {
	if flag != 0 {
		return flag
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return 0
}

func pickInt64(flag int64, local, global *int64) int64 {
	if flag != 0 {
		return flag
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return 0
}

func pickBool(flag bool, local, global *bool) bool {
	if flag {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
