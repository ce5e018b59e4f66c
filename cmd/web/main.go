package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hypertech.group/hypersystem-web/internal/config"
	"hypertech.group/hypersystem-web/internal/observability"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// loadFunc resolves configuration once flags have been parsed.
type loadFunc func() (config.Config, error)

func newRootCmd() *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:          "web",
		Short:        "HyperSystem marketing site",
		Long:         `Serves, exports and checks the HyperSystem marketing site in zh-TW, zh-CN, en and ja.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to read; empty disables it")

	load := func() (config.Config, error) {
		return config.Load(config.WithEnvFile(envFile))
	}

	rootCmd.AddCommand(
		newServeCmd(load),
		newExportCmd(load),
		newCheckCmd(load),
	)
	return rootCmd
}

// newLogger builds the process logger; local runs get the console encoder.
func newLogger(cfg config.Config) *zap.Logger {
	opts := []observability.LoggerOption{observability.WithService(cfg.Tracing.ServiceName)}
	if cfg.Server.Environment == "local" {
		opts = append(opts, observability.WithConsole())
	}
	return observability.NewLogger(cfg.Log.Level, opts...)
}
