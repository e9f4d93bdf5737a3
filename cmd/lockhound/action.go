package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "action",
		Short: "GitHub Action helpers",
	}
	rootCmd.AddCommand(cmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a GitHub Action workflow running lockhound",
		RunE: func(_ *cobra.Command, _ []string) error {
			dir := filepath.Join(".github", "workflows")
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
			path := filepath.Join(dir, "lockhound.yml")
			content := `name: Lockfile Audit
on: [push, pull_request]
jobs:
  scan:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-go@v5
        with:
          go-version: 'stable'
      - run: go install github.com/accrava/lockhound/cmd/lockhound@latest
      - run: lockhound scan --csv lockhound-report.csv
      - uses: actions/upload-artifact@v4
        if: always()
        with:
          name: lockhound-report
          path: lockhound-report.csv
`
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return err
			}
			fmt.Println("Wrote", path)
			return nil
		},
	}
	cmd.AddCommand(initCmd)
}
