package core

// Room is a channel-scoped chat space holding an ordered message log and the
// set of connections currently placed in it.
type Room struct {
	Channel string
	Name    string

	messages  []*Message
	occupants map[*Client]struct{}
}

func newRoom(channel, name string) *Room {
	return &Room{
		Channel:   channel,
		Name:      name,
		occupants: make(map[*Client]struct{}),
	}
}

// AddOccupant inserts a client into the room. Returns true if newly added.
func (r *Room) AddOccupant(c *Client) bool {
	if _, exists := r.occupants[c]; exists {
		return false
	}
	r.occupants[c] = struct{}{}
	return true
}

// RemoveOccupant deletes a client from the room. Returns true if removed.
func (r *Room) RemoveOccupant(c *Client) bool {
	if _, exists := r.occupants[c]; !exists {
		return false
	}
	delete(r.occupants, c)
	return true
}

// Occupied reports whether the client is currently in the room.
func (r *Room) Occupied(c *Client) bool {
	_, exists := r.occupants[c]
	return exists
}

// OccupantCount returns the number of clients currently in the room.
func (r *Room) OccupantCount() int {
	return len(r.occupants)
}

// Append adds a message to the end of the room's log.
func (r *Room) Append(m *Message) {
	r.messages = append(r.messages, m)
}

// Messages returns the room's log in insertion order. The slice is shared;
// callers must not mutate it.
func (r *Room) Messages() []*Message {
	return r.messages
}

// Find returns the message with the given ID, or nil if absent.
func (r *Room) Find(id int64) *Message {
	for _, m := range r.messages {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// Broadcast sends an event to all clients in the room. The occupancy set is
// read fresh at send time.
func (r *Room) Broadcast(event *Event) {
	for client := range r.occupants {
		select {
		case client.Events <- event:
		default:
			// Drop if slow consumer.
		}
	}
}
