package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hypertech.group/hypersystem-web/internal/config"
	"hypertech.group/hypersystem-web/internal/export"
	"hypertech.group/hypersystem-web/internal/httpserver"
	"hypertech.group/hypersystem-web/public"
)

func newExportCmd(load loadFunc) *cobra.Command {
	var (
		out         string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render every page into a static directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			ex, err := newExporter(cfg)
			if err != nil {
				return err
			}
			ex.Concurrency = concurrency
			res, err := ex.Run(cmd.Context(), out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d pages and %d assets to %s\n", res.Pages, res.Assets, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "pages rendered in parallel")
	return cmd
}

// newExporter wires the same handler the server runs.
func newExporter(cfg config.Config) (*export.Exporter, error) {
	logger := newLogger(cfg)
	assets, err := public.AssetsFS()
	if err != nil {
		return nil, fmt.Errorf("failed to open assets: %w", err)
	}
	h, err := httpserver.NewHandler(httpserver.Config{App: cfg, Logger: logger, Assets: assets})
	if err != nil {
		return nil, fmt.Errorf("failed to build handler: %w", err)
	}
	return &export.Exporter{
		Handler: h,
		Site:    cfg.Site,
		Assets:  assets,
		Logger:  logger,
	}, nil
}
