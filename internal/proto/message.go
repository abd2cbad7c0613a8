package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	ProtocolVersion = 1

	InboundTypeSetName     = "set_name"
	InboundTypeJoinChannel = "join_channel"
	InboundTypeJoinRoom    = "join_room"
	InboundTypeMsg         = "msg"
	InboundTypeMarkRead    = "mark_read"

	OutboundTypeEvent = "event"
	OutboundTypeError = "error"

	EventNameNameSet = "name_set"
	EventNameRooms   = "room_list"
	EventNameHistory = "history"
	EventNameMessage = "message"
	EventNameReceipt = "receipt"
	EventNameUnread  = "unread"
)

// SetNameData binds a display name to the connection.
type SetNameData struct {
	Name string `json:"name"`
}

// JoinChannelData requests to enter a channel.
type JoinChannelData struct {
	Channel string `json:"channel"`
}

// JoinRoomData requests to enter a room within a channel.
type JoinRoomData struct {
	Channel string `json:"channel"`
	Room    string `json:"room"`
}

// MsgData is a chat message from the client.
type MsgData struct {
	Channel string `json:"channel"`
	Room    string `json:"room"`
	Text    string `json:"text"`
}

// MarkReadData reports that the client has seen a message.
type MarkReadData struct {
	Channel   string `json:"channel"`
	Room      string `json:"room"`
	MessageID int64  `json:"message_id"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// EventNameSet confirms the accepted display name.
type EventNameSet struct {
	Name string `json:"name"`
}

// EventRoomList lists the rooms of a channel in fixed order.
type EventRoomList struct {
	Channel string   `json:"channel"`
	Rooms   []string `json:"rooms"`
}

// EventMessage is one chat message with its current read set.
type EventMessage struct {
	ID      int64    `json:"id"`
	Channel string   `json:"channel"`
	Room    string   `json:"room"`
	Sender  string   `json:"sender"`
	Text    string   `json:"text"`
	TS      int64    `json:"ts"`
	ReadBy  []string `json:"read_by"`
}

// EventHistory delivers a room's full ordered log to a joining client.
type EventHistory struct {
	Channel  string         `json:"channel"`
	Room     string         `json:"room"`
	Messages []EventMessage `json:"messages"`
}

// EventReceipt carries a message's updated read set.
type EventReceipt struct {
	Channel   string   `json:"channel"`
	Room      string   `json:"room"`
	MessageID int64    `json:"message_id"`
	ReadBy    []string `json:"read_by"`
}

// ChannelUnread is the per-channel unread breakdown.
type ChannelUnread struct {
	Total int            `json:"total"`
	Rooms map[string]int `json:"rooms"`
}

// EventUnread is a per-connection unread snapshot across all channels.
type EventUnread struct {
	Channels map[string]ChannelUnread `json:"channels"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
