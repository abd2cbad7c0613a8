package core

// ChannelDef names one channel and its rooms when building the topology.
type ChannelDef struct {
	Name  string
	Rooms []string
}

// Topology is the fixed channel/room table, immutable after boot. Room
// contents (logs, occupancy) are mutated through the hub only.
type Topology struct {
	channels map[string]*Channel
	order    []string
}

// NewTopology builds the channel/room table from definitions.
func NewTopology(defs []ChannelDef) *Topology {
	t := &Topology{channels: make(map[string]*Channel, len(defs))}
	for _, def := range defs {
		ch := &Channel{
			Name:  def.Name,
			rooms: make(map[string]*Room, len(def.Rooms)),
		}
		for _, room := range def.Rooms {
			ch.rooms[room] = newRoom(def.Name, room)
			ch.order = append(ch.order, room)
		}
		t.channels[def.Name] = ch
		t.order = append(t.order, def.Name)
	}
	return t
}

// Channel looks up a channel by name.
func (t *Topology) Channel(name string) (*Channel, bool) {
	ch, ok := t.channels[name]
	return ch, ok
}

// Channels returns all channels in definition order.
func (t *Topology) Channels() []*Channel {
	out := make([]*Channel, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.channels[name])
	}
	return out
}

// Room looks up a room by channel and room name.
func (t *Topology) Room(channel, room string) (*Room, bool) {
	ch, ok := t.channels[channel]
	if !ok {
		return nil, false
	}
	r, ok := ch.rooms[room]
	return r, ok
}

// Channel is a named grouping with a fixed set of rooms.
type Channel struct {
	Name  string
	rooms map[string]*Room
	order []string
}

// RoomNames returns the room names in definition order.
func (c *Channel) RoomNames() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Rooms returns the rooms in definition order.
func (c *Channel) Rooms() []*Room {
	out := make([]*Room, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.rooms[name])
	}
	return out
}
