// Command lockhound scans a directory tree for npm, Yarn and pnpm
// lockfile entries that match a list of known-compromised releases.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

var (
	flagVerbose bool
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:          "lockhound",
	Short:        "Audit lockfiles for known-compromised package releases",
	Long:         "lockhound walks a directory tree, parses every package-lock.json, yarn.lock and pnpm-lock.yaml it finds, and reports dependencies pinned at a release known to be compromised.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
