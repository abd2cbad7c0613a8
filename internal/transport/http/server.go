package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/topichat/topichat-server/internal/config"
	"github.com/topichat/topichat-server/internal/core"
)

// NewServer builds the HTTP server: health check, read-only topology API,
// and the WebSocket endpoint.
func NewServer(hub *core.Hub, topology *core.Topology, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger))

	router.GET("/healthz", healthHandler)

	topo := NewTopologyHandlers(topology, logger)
	api := router.Group("/api")
	api.GET("/channels", topo.ListChannels)
	api.GET("/channels/:channel/rooms", topo.ListRooms)

	router.GET("/ws", gin.WrapH(NewWSHandler(hub, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
