package core

// Fan-out lives here so there is exactly one place that decides who gets
// notified. Two patterns exist: room-scoped delivery via Room.Broadcast, and
// the global unread fan-out below, which computes a fresh payload per
// recipient because the current-room exemption makes counts
// connection-specific.

// sendTo delivers an event to a single client without blocking the hub.
func (h *Hub) sendTo(c *Client, event *Event) {
	select {
	case c.Events <- event:
	default:
		h.log.Debug().Str("client_id", c.ID).Msg("dropping event for slow consumer")
	}
}

// broadcastUnread sends each registered connection its own freshly computed
// unread snapshot. Called inside the hub loop after every state change, so
// no connection ever observes a snapshot computed under superseded state.
func (h *Hub) broadcastUnread() {
	h.registry.each(func(s *session) {
		h.sendTo(s.client, &Event{
			Kind:   EventUnread,
			Unread: unreadFor(h.topology, s),
		})
	})
}

// broadcastReceipt pushes a message's current read set to a room's occupancy.
func (h *Hub) broadcastReceipt(room *Room, m *Message) {
	room.Broadcast(&Event{
		Kind:      EventReceipt,
		Channel:   room.Channel,
		Room:      room.Name,
		MessageID: m.ID,
		Readers:   m.Readers(),
	})
}
