package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/topichat/topichat-server/internal/app"
	"github.com/topichat/topichat-server/internal/config"
	"github.com/topichat/topichat-server/internal/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		logLevel   string
		logFormat  string
	)

	cmd := &cobra.Command{
		Use:           "topichat-server",
		Short:         "Real-time channel/room chat server with read receipts and unread counts",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bootLog := log.New(logLevel, logFormat)

			cfg, path, err := config.Load(bootLog, configPath)
			if err != nil {
				return err
			}
			// Flags override whatever the file and env provided.
			cfg.UpdateFrom(config.Config{Addr: addr, LogLevel: logLevel, LogFormat: logFormat})

			logger := log.New(cfg.LogLevel, cfg.LogFormat)
			logger.Info().
				Str("config", path).
				Str("addr", cfg.Addr).
				Int("channels", len(cfg.Channels)).
				Msg("starting topichat server")

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := app.New(&cfg, logger).Run(ctx); err != nil {
				logger.Error().Err(err).Msg("server exited with error")
				return err
			}
			logger.Info().Msg("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address (overrides config)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&logFormat, "log-format", "", "log format: console or json")

	return cmd
}
