package core

// Client is a live connection as seen by the core layer. Identity and
// placement live in the session registry, not here; the client only carries
// the transport-facing channels.
type Client struct {
	ID       string
	Commands chan *Command
	Events   chan *Event
}

// NewClient constructs a client with initialized channels.
func NewClient(id string) *Client {
	return &Client{
		ID:       id,
		Commands: make(chan *Command, 8),
		Events:   make(chan *Event, 64),
	}
}
