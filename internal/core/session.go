package core

import "strings"

// sessionStage is the explicit placement state machine for one connection:
// unnamed -> named -> in a channel -> in a room. Disconnect removes the
// session entirely instead of resetting it.
type sessionStage int

const (
	stageUnnamed sessionStage = iota
	stageNamed
	stageInChannel
	stageInRoom
)

// session binds a connection to its claimed display name and current
// channel/room placement. Invariant: room set implies channel set.
type session struct {
	client  *Client
	name    string
	channel string
	room    string
	stage   sessionStage
}

func (s *session) named() bool {
	return s.stage >= stageNamed
}

// setName stores the trimmed display name. Returns false if the name is
// empty after trimming.
func (s *session) setName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false
	}
	s.name = trimmed
	if s.stage == stageUnnamed {
		s.stage = stageNamed
	}
	return true
}

// placeInChannel moves the session to a channel with no room.
func (s *session) placeInChannel(channel string) {
	s.channel = channel
	s.room = ""
	s.stage = stageInChannel
}

// placeInRoom moves the session to a room within a channel.
func (s *session) placeInRoom(channel, room string) {
	s.channel = channel
	s.room = room
	s.stage = stageInRoom
}

// in reports whether the session is currently placed in the given room.
func (s *session) in(channel, room string) bool {
	return s.stage == stageInRoom && s.channel == channel && s.room == room
}

// registry maps live connections to their sessions. All access happens on
// the hub goroutine.
type registry struct {
	sessions map[*Client]*session
}

func newRegistry() *registry {
	return &registry{sessions: make(map[*Client]*session)}
}

// register creates an empty session for the connection.
func (r *registry) register(c *Client) *session {
	s := &session{client: c}
	r.sessions[c] = s
	return s
}

// get returns the session for the connection, or ErrUnknownConnection if it
// was never registered or already unregistered.
func (r *registry) get(c *Client) (*session, error) {
	s, ok := r.sessions[c]
	if !ok {
		return nil, ErrUnknownConnection
	}
	return s, nil
}

// unregister removes the session. The caller is responsible for first
// evicting the connection from any room occupancy.
func (r *registry) unregister(c *Client) {
	delete(r.sessions, c)
}

// each visits every registered session.
func (r *registry) each(fn func(*session)) {
	for _, s := range r.sessions {
		fn(s)
	}
}

func (r *registry) len() int {
	return len(r.sessions)
}
