package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate configuration, message bundles and templates",
		Long:  `Loads configuration, parses every locale bundle and template set, and renders each page once. Exits non-zero on the first failure.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			ex, err := newExporter(cfg)
			if err != nil {
				return err
			}
			n, err := ex.Check(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d pages rendered\n", n)
			return nil
		},
	}
}
