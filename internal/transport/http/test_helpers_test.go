package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/topichat/topichat-server/internal/config"
	"github.com/topichat/topichat-server/internal/core"
	"github.com/topichat/topichat-server/internal/proto"
)

func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	topology := core.NewTopology([]core.ChannelDef{
		{Name: "General", Rooms: []string{"Room1", "Room2"}},
		{Name: "Tech", Rooms: []string{"Room1", "Room2"}},
	})

	logger := zerolog.Nop()
	hub := core.NewHub(topology, &logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	server := NewServer(hub, topology, config.Config{
		Addr:              ":0",
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
	}, &logger)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts
}

// outboundFrame mirrors proto.Outbound with the payload left raw for
// per-event decoding.
type outboundFrame struct {
	Type  string          `json:"type"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
	Error *proto.Error    `json:"error"`
}

func send(ctx context.Context, t *testing.T, conn *websocket.Conn, msgType string, data any) {
	t.Helper()

	payload, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal %s payload: %v", msgType, err)
	}
	if err := wsjson.Write(ctx, conn, proto.Inbound{Type: msgType, Data: payload}); err != nil {
		t.Fatalf("write %s: %v", msgType, err)
	}
}

// readFrame reads outbound frames until one matches the wanted event name
// (or, for errors, until a frame of type "error" arrives).
func readFrame(ctx context.Context, t *testing.T, conn *websocket.Conn, event string) outboundFrame {
	t.Helper()

	for {
		var frame outboundFrame
		if err := wsjson.Read(ctx, conn, &frame); err != nil {
			t.Fatalf("read waiting for %q: %v", event, err)
		}
		if event == proto.OutboundTypeError && frame.Type == proto.OutboundTypeError {
			return frame
		}
		if frame.Event == event {
			return frame
		}
	}
}
