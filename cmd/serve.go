package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"library/cache"
	"library/config"
	"library/db"
	"library/logger"
	"library/service"
)

func newServeCommand(configPath *string) *cobra.Command {
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath, cmd.Flags())
			if err != nil {
				return err
			}

			app := createApp(cfg)
			if err := app.Err(); err != nil {
				return err
			}

			app.Run()
			return nil
		},
	}

	serve.Flags().Int("port", config.DefaultPort, "port to listen on")
	serve.Flags().String("data-file", config.DefaultDataFile, "path of the JSON inventory file")
	serve.Flags().String("log-dir", config.DefaultLogDir, "directory for requests.log and books.log")
	serve.Flags().String("log-level", config.DefaultLogLevel, "initial level of every logger")

	return serve
}

// createApp assembles the fx application for the given config
func createApp(cfg *config.Config, options ...fx.Option) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg),
		logger.Module,
		cache.Module,
		db.Module,
		service.Module,
		fx.Options(options...),
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Log.Level == "debug" || cfg.Log.Level == "trace" {
			return &fxevent.ConsoleLogger{W: os.Stdout}
		}

		return fxevent.NopLogger
	}
}
