package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/accrava/lockhound/internal/registry"
)

func init() {
	var listFile string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the active match list",
		RunE: func(_ *cobra.Command, _ []string) error {
			reg := registry.Default()
			if listFile != "" {
				var err error
				if reg, err = registry.LoadFile(listFile); err != nil {
					return err
				}
			}
			for _, s := range reg.Specs() {
				fmt.Printf("%s@%s\n", s.Name, s.Version)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&listFile, "list", "", "show this list file instead of the embedded one")
	rootCmd.AddCommand(cmd)
}
