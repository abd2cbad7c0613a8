package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventNameSet confirms the display name to the setting connection.
	EventNameSet EventKind = iota
	// EventRoomList delivers the rooms of a channel to the joining connection.
	EventRoomList
	// EventHistory delivers a room's full message log to the joining connection.
	EventHistory
	// EventRoomMessage notifies room occupants about a new chat message.
	EventRoomMessage
	// EventReceipt notifies room occupants about an updated read set.
	EventReceipt
	// EventUnread delivers a per-connection unread snapshot.
	EventUnread
	// EventError notifies a client about a rejected command.
	EventError
)

// Event is sent to clients to describe what happened in the system.
// Payload fields are value snapshots taken inside the hub loop, so a later
// mutation can never leak into an already-enqueued event.
type Event struct {
	Kind      EventKind
	Name      string         // EventNameSet
	Channel   string         // EventRoomList, EventHistory, EventReceipt
	Room      string         // EventHistory, EventReceipt
	Rooms     []string       // EventRoomList
	Message   *MessageView   // EventRoomMessage
	Messages  []MessageView  // EventHistory
	MessageID int64          // EventReceipt
	Readers   []string       // EventReceipt
	Unread    UnreadSnapshot // EventUnread
	Error     *CoreError     // EventError
}
