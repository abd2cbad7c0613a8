package app

import (
	"context"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/topichat/topichat-server/internal/config"
	"github.com/topichat/topichat-server/internal/core"
	transporthttp "github.com/topichat/topichat-server/internal/transport/http"
)

// App wires together core and transport layers.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	hub             *core.Hub
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg *config.Config, logger *zerolog.Logger) *App {
	topology := core.NewTopology(channelDefs(cfg.Channels))
	hub := core.NewHub(topology, logger)
	server := transporthttp.NewServer(hub, topology, *cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		hub:             hub,
		log:             logger,
	}
}

func channelDefs(channels []config.ChannelConfig) []core.ChannelDef {
	defs := make([]core.ChannelDef, 0, len(channels))
	for _, ch := range channels {
		defs = append(defs, core.ChannelDef{Name: ch.Name, Rooms: ch.Rooms})
	}
	return defs
}

// Run starts the hub loop and HTTP server and blocks until context
// cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go a.hub.Run(ctx)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-serverErr
	}
}
