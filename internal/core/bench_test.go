package core

import (
	"context"
	"fmt"
	"testing"
)

func benchmarkRoomBroadcast(b *testing.B, recipients int) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(testTopology(), nil)
	go hub.Run(ctx)

	join := func(c *Client) {
		c.Commands <- &Command{Kind: CommandSetName, Name: c.ID}
		c.Commands <- &Command{Kind: CommandJoinRoom, Channel: "General", Room: "Room1"}
	}

	sender := NewClient("sender")
	hub.RegisterClient(sender)
	join(sender)

	for i := 0; i < recipients; i++ {
		c := NewClient(fmt.Sprintf("c%d", i))
		hub.RegisterClient(c)
		join(c)
		// Drain recipients to avoid channel backpressure.
		go func(cl *Client) {
			for range cl.Events {
			}
		}(c)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		sender.Commands <- &Command{
			Kind:    CommandSendMessage,
			Channel: "General",
			Room:    "Room1",
			Text:    "payload",
		}
		// Read own events up to the message echo; receipts and unread
		// snapshots from the previous iteration drain along the way.
		for ev := range sender.Events {
			if ev.Kind == EventRoomMessage {
				break
			}
		}
	}
}

func BenchmarkRoomBroadcast_10(b *testing.B)  { benchmarkRoomBroadcast(b, 10) }
func BenchmarkRoomBroadcast_100(b *testing.B) { benchmarkRoomBroadcast(b, 100) }
func BenchmarkRoomBroadcast_500(b *testing.B) { benchmarkRoomBroadcast(b, 500) }
