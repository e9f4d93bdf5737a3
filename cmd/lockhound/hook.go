package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Manage git hooks",
	}
	rootCmd.AddCommand(cmd)

	install := &cobra.Command{
		Use:   "install",
		Short: "Install git hooks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if ok, _ := cmd.Flags().GetBool("pre-commit"); !ok {
				return fmt.Errorf("specify --pre-commit")
			}
			hookDir := filepath.Join(".git", "hooks")
			if _, err := os.Stat(hookDir); os.IsNotExist(err) {
				return fmt.Errorf("not a git repository (missing .git/hooks)")
			}
			hookPath := filepath.Join(hookDir, "pre-commit")
			content := "#!/bin/sh\n\nlockhound scan --staged\n"
			if err := os.WriteFile(hookPath, []byte(content), 0755); err != nil {
				return err
			}
			fmt.Println("Installed pre-commit hook -> .git/hooks/pre-commit")
			return nil
		},
	}
	install.Flags().Bool("pre-commit", false, "install pre-commit hook running a staged scan")
	cmd.AddCommand(install)
}
