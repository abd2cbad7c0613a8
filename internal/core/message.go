package core

import (
	"sort"
	"time"
)

// Message is the domain model for a chat message. A message is owned by the
// room it was posted to and is immutable except for read-set growth.
type Message struct {
	ID        int64
	Channel   string
	Room      string
	Sender    string
	Text      string
	CreatedAt time.Time

	// readBy holds connection IDs known to have seen the message. Entries
	// are only ever added, never removed.
	readBy map[string]struct{}
}

func newMessage(id int64, channel, room, sender, senderConn, text string) *Message {
	return &Message{
		ID:        id,
		Channel:   channel,
		Room:      room,
		Sender:    sender,
		Text:      text,
		CreatedAt: time.Now(),
		readBy:    map[string]struct{}{senderConn: {}},
	}
}

// MarkReadBy records that the given connection has seen the message.
// Returns true if the connection was newly added.
func (m *Message) MarkReadBy(connID string) bool {
	if _, seen := m.readBy[connID]; seen {
		return false
	}
	m.readBy[connID] = struct{}{}
	return true
}

// ReadBy reports whether the given connection has seen the message.
func (m *Message) ReadBy(connID string) bool {
	_, seen := m.readBy[connID]
	return seen
}

// Readers returns a sorted copy of the read set.
func (m *Message) Readers() []string {
	readers := make([]string, 0, len(m.readBy))
	for id := range m.readBy {
		readers = append(readers, id)
	}
	sort.Strings(readers)
	return readers
}

// MessageView is a point-in-time value snapshot of a message, safe to hand
// to transport goroutines while the hub keeps mutating the read set.
type MessageView struct {
	ID        int64
	Channel   string
	Room      string
	Sender    string
	Text      string
	CreatedAt time.Time
	ReadBy    []string
}

// View snapshots the message including its current read set.
func (m *Message) View() MessageView {
	return MessageView{
		ID:        m.ID,
		Channel:   m.Channel,
		Room:      m.Room,
		Sender:    m.Sender,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
		ReadBy:    m.Readers(),
	}
}
