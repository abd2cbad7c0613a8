package core

import (
	"context"
	"testing"
	"time"
)

func testTopology() *Topology {
	return NewTopology([]ChannelDef{
		{Name: "General", Rooms: []string{"Room1", "Room2"}},
		{Name: "Tech", Rooms: []string{"Room1", "Room2"}},
	})
}

func startHub(t *testing.T) *Hub {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := NewHub(testTopology(), nil)
	go hub.Run(ctx)
	return hub
}

// connect registers a client and walks it through set_name, and optionally
// join_channel and join_room, consuming both the confirmation events and the
// unread snapshots each step triggers so the caller starts from a clean queue.
func connect(t *testing.T, hub *Hub, id, name, channel, room string) *Client {
	t.Helper()

	c := NewClient(id)
	hub.RegisterClient(c)

	c.Commands <- &Command{Kind: CommandSetName, Name: name}
	mustEvent(t, c.Events, EventNameSet)
	mustEvent(t, c.Events, EventUnread)

	if channel != "" {
		c.Commands <- &Command{Kind: CommandJoinChannel, Channel: channel}
		mustEvent(t, c.Events, EventRoomList)
		mustEvent(t, c.Events, EventUnread)
	}
	if room != "" {
		c.Commands <- &Command{Kind: CommandJoinRoom, Channel: channel, Room: room}
		mustEvent(t, c.Events, EventHistory)
		mustEvent(t, c.Events, EventUnread)
	}
	return c
}

// mustEvent returns the next event of the wanted kind, discarding others.
func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

// collectUntil gathers events from ch until one of the wanted kind arrives.
// The terminating event is returned separately from the ones before it.
func collectUntil(t *testing.T, ch <-chan *Event, kind EventKind) ([]*Event, *Event) {
	t.Helper()

	var before []*Event
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return before, ev
			}
			before = append(before, ev)
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil, nil
}

func containsReader(readers []string, id string) bool {
	for _, r := range readers {
		if r == id {
			return true
		}
	}
	return false
}
