package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/topichat/topichat-server/internal/core"
)

// TopologyHandlers exposes the fixed channel/room table so clients can
// render pickers before opening a WebSocket.
type TopologyHandlers struct {
	topology *core.Topology
	log      *zerolog.Logger
}

// NewTopologyHandlers creates a new topology handlers instance.
func NewTopologyHandlers(topology *core.Topology, logger *zerolog.Logger) *TopologyHandlers {
	return &TopologyHandlers{
		topology: topology,
		log:      logger,
	}
}

// ChannelResponse represents a channel in API responses.
type ChannelResponse struct {
	Name  string   `json:"name"`
	Rooms []string `json:"rooms"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListChannels returns every channel with its rooms.
// GET /api/channels
func (h *TopologyHandlers) ListChannels(c *gin.Context) {
	channels := h.topology.Channels()
	response := make([]ChannelResponse, 0, len(channels))
	for _, ch := range channels {
		response = append(response, ChannelResponse{
			Name:  ch.Name,
			Rooms: ch.RoomNames(),
		})
	}
	c.JSON(http.StatusOK, response)
}

// ListRooms returns the rooms of one channel.
// GET /api/channels/:channel/rooms
func (h *TopologyHandlers) ListRooms(c *gin.Context) {
	name := c.Param("channel")
	ch, ok := h.topology.Channel(name)
	if !ok {
		h.log.Debug().Str("channel", name).Msg("rooms requested for unknown channel")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "channel not found"})
		return
	}
	c.JSON(http.StatusOK, ChannelResponse{Name: ch.Name, Rooms: ch.RoomNames()})
}
