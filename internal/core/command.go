package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandSetName binds a display name to the connection.
	CommandSetName CommandKind = iota
	// CommandJoinChannel places the client in a channel, clearing any room.
	CommandJoinChannel
	// CommandJoinRoom places the client in a room within a channel.
	CommandJoinRoom
	// CommandSendMessage posts a chat message to the client's current room.
	CommandSendMessage
	// CommandMarkRead adds the client to a message's read set.
	CommandMarkRead
)

// Command represents an action requested by a client.
type Command struct {
	Kind      CommandKind
	Name      string
	Channel   string
	Room      string
	Text      string
	MessageID int64
}
