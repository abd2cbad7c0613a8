package core

import (
	"context"

	"github.com/rs/zerolog"
)

// Hub owns the whole session/room/message graph. A single goroutine
// (Run) applies every command from precondition check through mutation to
// broadcast enqueue, so no two state changes ever interleave partially.
type Hub struct {
	topology *Topology
	registry *registry
	log      *zerolog.Logger

	register   chan *Client
	unregister chan *Client
	commands   chan clientCommand

	nextMessageID int64
}

type clientCommand struct {
	client *Client
	cmd    *Command
}

// NewHub creates a hub over the given fixed topology.
func NewHub(topology *Topology, logger *zerolog.Logger) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		topology:      topology,
		registry:      newRegistry(),
		log:           logger,
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		commands:      make(chan clientCommand, 64),
		nextMessageID: 1,
	}
}

// RegisterClient creates a session for the client and starts funneling its
// commands into the hub mailbox.
func (h *Hub) RegisterClient(c *Client) {
	h.register <- c
	go func() {
		for cmd := range c.Commands {
			h.commands <- clientCommand{client: c, cmd: cmd}
		}
	}()
}

// UnregisterClient tears the client down: occupancy eviction, session
// removal, and one final unread broadcast to the remaining connections.
func (h *Hub) UnregisterClient(c *Client) {
	h.unregister <- c
}

// Run processes registrations and commands until the context is canceled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case c := <-h.register:
			h.registry.register(c)
			h.log.Debug().Str("client_id", c.ID).Msg("client registered")
		case c := <-h.unregister:
			h.teardown(c)
		case cc := <-h.commands:
			h.dispatch(cc.client, cc.cmd)
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) dispatch(c *Client, cmd *Command) {
	s, err := h.registry.get(c)
	if err != nil {
		// Bookkeeping failure or a command raced past disconnect; abort
		// this command only.
		h.log.Warn().Str("client_id", c.ID).Str("code", ErrCodeUnknownConnection).
			Msg("command for connection without session")
		return
	}

	switch cmd.Kind {
	case CommandSetName:
		h.handleSetName(s, cmd.Name)
	case CommandJoinChannel:
		h.handleJoinChannel(s, cmd.Channel)
	case CommandJoinRoom:
		h.handleJoinRoom(s, cmd.Channel, cmd.Room)
	case CommandSendMessage:
		h.handleSendMessage(s, cmd.Channel, cmd.Room, cmd.Text)
	case CommandMarkRead:
		h.handleMarkRead(s, cmd.Channel, cmd.Room, cmd.MessageID)
	default:
		h.sendTo(c, &Event{Kind: EventError, Error: coreError(ErrCodeBadRequest, "unknown command")})
	}
}

func (h *Hub) handleSetName(s *session, name string) {
	if !s.setName(name) {
		h.reject(s, ErrCodeInvalidName, "invalid username")
		return
	}
	h.log.Debug().Str("client_id", s.client.ID).Str("name", s.name).Msg("name set")
	h.sendTo(s.client, &Event{Kind: EventNameSet, Name: s.name})
	// The connection had no prior state; hand it its current snapshot.
	h.sendTo(s.client, &Event{Kind: EventUnread, Unread: unreadFor(h.topology, s)})
}

func (h *Hub) handleJoinChannel(s *session, channel string) {
	if !s.named() {
		h.reject(s, ErrCodeNameRequired, "set a username first")
		return
	}
	ch, ok := h.topology.Channel(channel)
	if !ok {
		h.reject(s, ErrCodeUnknownChannel, "channel does not exist")
		return
	}

	h.leaveRoom(s)
	s.placeInChannel(channel)

	h.sendTo(s.client, &Event{Kind: EventRoomList, Channel: channel, Rooms: ch.RoomNames()})
	// Leaving a room shifts the current-room exemption, so counts change.
	h.broadcastUnread()
	h.log.Debug().Str("client_id", s.client.ID).Str("channel", channel).Msg("joined channel")
}

func (h *Hub) handleJoinRoom(s *session, channel, room string) {
	if !s.named() {
		h.reject(s, ErrCodeNameRequired, "set a username first")
		return
	}
	target, ok := h.topology.Room(channel, room)
	if !ok {
		h.reject(s, ErrCodeUnknownRoom, "room does not exist")
		return
	}

	// Leave-then-join is one indivisible step: no observer can see the
	// connection in zero or two occupancy sets.
	h.leaveRoom(s)
	s.placeInRoom(channel, room)
	target.AddOccupant(s.client)

	history := make([]MessageView, 0, len(target.Messages()))
	for _, m := range target.Messages() {
		history = append(history, m.View())
	}
	h.sendTo(s.client, &Event{Kind: EventHistory, Channel: channel, Room: room, Messages: history})

	// The joiner has now seen the whole log; grow each read set and tell
	// the room, late joiner included.
	for _, m := range target.Messages() {
		m.MarkReadBy(s.client.ID)
		h.broadcastReceipt(target, m)
	}

	h.broadcastUnread()
	h.log.Debug().Str("client_id", s.client.ID).Str("channel", channel).Str("room", room).Msg("joined room")
}

func (h *Hub) handleSendMessage(s *session, channel, room, text string) {
	// Best-effort semantics: sending from a room you are not in is dropped,
	// not rejected.
	if channel == "" || room == "" || text == "" || !s.in(channel, room) {
		return
	}
	target, ok := h.topology.Room(channel, room)
	if !ok {
		return
	}

	m := newMessage(h.nextMessageID, channel, room, s.name, s.client.ID, text)
	h.nextMessageID++
	target.Append(m)

	view := m.View()
	target.Broadcast(&Event{Kind: EventRoomMessage, Channel: channel, Room: room, Message: &view})

	// Everyone present at send time is presumed to have seen it.
	for occupant := range target.occupants {
		m.MarkReadBy(occupant.ID)
	}
	h.broadcastReceipt(target, m)

	h.broadcastUnread()
	h.log.Debug().Int64("message_id", m.ID).Str("channel", channel).Str("room", room).
		Str("sender", s.name).Msg("message sent")
}

func (h *Hub) handleMarkRead(s *session, channel, room string, messageID int64) {
	if !s.in(channel, room) {
		return
	}
	target, ok := h.topology.Room(channel, room)
	if !ok {
		return
	}
	m := target.Find(messageID)
	if m == nil {
		return
	}

	m.MarkReadBy(s.client.ID)
	h.broadcastReceipt(target, m)
	h.broadcastUnread()
}

// leaveRoom evicts the session's client from its current room occupancy.
// No-op when the session is not in a room.
func (h *Hub) leaveRoom(s *session) {
	if s.stage != stageInRoom {
		return
	}
	if prev, ok := h.topology.Room(s.channel, s.room); ok {
		prev.RemoveOccupant(s.client)
	}
}

func (h *Hub) teardown(c *Client) {
	s, err := h.registry.get(c)
	if err != nil {
		return
	}
	h.leaveRoom(s)
	h.registry.unregister(c)
	close(c.Events)
	h.log.Debug().Str("client_id", c.ID).Msg("client unregistered")
	h.broadcastUnread()
}

func (h *Hub) reject(s *session, code, msg string) {
	h.sendTo(s.client, &Event{Kind: EventError, Error: coreError(code, msg)})
}
