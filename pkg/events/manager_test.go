package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatchupQuerier implements CatchupQuerier for tests.
type mockCatchupQuerier struct {
	events []CatchupEvent
	err    error
}

func (m *mockCatchupQuerier) GetCatchupEvents(_ context.Context, _ string, _ int, limit int) ([]CatchupEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > 0 && len(m.events) > limit {
		return m.events[:limit], nil
	}
	return m.events, nil
}

func setupTestManager(t *testing.T, querier CatchupQuerier) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	if querier == nil {
		querier = &mockCatchupQuerier{}
	}
	manager := NewConnectionManager(querier, 5*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))

	t.Cleanup(func() { server.Close() })
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t, nil)
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManager_SubscribeConfirmed(t *testing.T) {
	manager, server := setupTestManager(t, nil)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: ChatChannel("proj-123")})

	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, "chat:proj-123", msg["channel"])

	time.Sleep(50 * time.Millisecond) // Let subscription propagate
	assert.Equal(t, 1, manager.ActiveConnections())
	assert.Equal(t, 1, manager.subscriberCount("chat:proj-123"))
}

func TestConnectionManager_Broadcast(t *testing.T) {
	manager, server := setupTestManager(t, nil)

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1)
	readJSON(t, conn2)

	writeJSON(t, conn1, ClientMessage{Action: "subscribe", Channel: ChatChannel("p1")})
	readJSON(t, conn1) // subscription.confirmed
	writeJSON(t, conn2, ClientMessage{Action: "subscribe", Channel: ChatChannel("p1")})
	readJSON(t, conn2)

	// Wait for both subscriptions to register
	require.Eventually(t, func() bool {
		return manager.subscriberCount("chat:p1") == 2
	}, 2*time.Second, 10*time.Millisecond)

	manager.Broadcast("chat:p1", []byte(`{"type":"message.new","content":"hi"}`))

	msg1 := readJSON(t, conn1)
	msg2 := readJSON(t, conn2)
	assert.Equal(t, "message.new", msg1["type"])
	assert.Equal(t, "message.new", msg2["type"])
}

func TestConnectionManager_BroadcastOnlySubscribedChannel(t *testing.T) {
	manager, server := setupTestManager(t, nil)
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: ChatChannel("p1")})
	readJSON(t, conn)

	require.Eventually(t, func() bool {
		return manager.subscriberCount("chat:p1") == 1
	}, 2*time.Second, 10*time.Millisecond)

	// Broadcast to a different channel, then the subscribed one.
	manager.Broadcast("chat:other", []byte(`{"type":"message.new","content":"wrong"}`))
	manager.Broadcast("chat:p1", []byte(`{"type":"message.new","content":"right"}`))

	msg := readJSON(t, conn)
	assert.Equal(t, "right", msg["content"])
}

func TestConnectionManager_CatchupReplayRelabeling(t *testing.T) {
	querier := &mockCatchupQuerier{
		events: []CatchupEvent{
			{ID: 1, Payload: map[string]interface{}{"type": EventTypeMessageNew, "content": "first"}},
			{ID: 2, Payload: map[string]interface{}{"type": EventTypeBuildStatus, "status": "started"}},
		},
	}
	_, server := setupTestManager(t, querier)
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: ChatChannel("p1")})
	readJSON(t, conn) // subscription.confirmed

	// Auto-catchup after subscribe: message.new is relabelled as replay,
	// other durable types pass through unchanged.
	msg1 := readJSON(t, conn)
	assert.Equal(t, EventTypeMessageReplay, msg1["type"])
	assert.Equal(t, float64(1), msg1["db_event_id"])

	msg2 := readJSON(t, conn)
	assert.Equal(t, EventTypeBuildStatus, msg2["type"])
	assert.Equal(t, float64(2), msg2["db_event_id"])
}

func TestConnectionManager_CatchupOverflow(t *testing.T) {
	events := make([]CatchupEvent, catchupLimit+1)
	for i := range events {
		events[i] = CatchupEvent{ID: i + 1, Payload: map[string]interface{}{"type": EventTypeBuildStatus}}
	}
	_, server := setupTestManager(t, &mockCatchupQuerier{events: events})
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: ChatChannel("p1")})
	readJSON(t, conn)

	for i := 0; i < catchupLimit; i++ {
		readJSON(t, conn)
	}
	overflow := readJSON(t, conn)
	assert.Equal(t, "catchup.overflow", overflow["type"])
	assert.Equal(t, true, overflow["has_more"])
}

// mapDeduper implements DeliveryDeduper over a plain map.
type mapDeduper struct {
	seen map[string]bool
}

func (d *mapDeduper) FirstTime(_ context.Context, key string) (bool, error) {
	if d.seen == nil {
		d.seen = make(map[string]bool)
	}
	if d.seen[key] {
		return false, nil
	}
	d.seen[key] = true
	return true, nil
}

func TestConnectionManager_MarkDeliveredIdempotent(t *testing.T) {
	manager, server := setupTestManager(t, nil)
	manager.SetDeliveryDeduper(&mapDeduper{})

	conn := connectWS(t, server)
	readJSON(t, conn)

	eventID := 42
	writeJSON(t, conn, ClientMessage{Action: "mark_delivered", EventID: &eventID})
	first := readJSON(t, conn)
	assert.Equal(t, "delivery.confirmed", first["type"])
	assert.Equal(t, float64(42), first["event_id"])
	assert.Equal(t, false, first["duplicate"])

	writeJSON(t, conn, ClientMessage{Action: "mark_delivered", EventID: &eventID})
	second := readJSON(t, conn)
	assert.Equal(t, "delivery.confirmed", second["type"])
	assert.Equal(t, true, second["duplicate"])
}

func TestConnectionManager_MarkDeliveredRequiresEventID(t *testing.T) {
	_, server := setupTestManager(t, nil)
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "mark_delivered"})
	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
}

func TestConnectionManager_Ping(t *testing.T) {
	_, server := setupTestManager(t, nil)
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_UnsubscribeStopsDelivery(t *testing.T) {
	manager, server := setupTestManager(t, nil)
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: ChatChannel("p1")})
	readJSON(t, conn)
	require.Eventually(t, func() bool {
		return manager.subscriberCount("chat:p1") == 1
	}, 2*time.Second, 10*time.Millisecond)

	writeJSON(t, conn, ClientMessage{Action: "unsubscribe", Channel: ChatChannel("p1")})
	require.Eventually(t, func() bool {
		return manager.subscriberCount("chat:p1") == 0
	}, 2*time.Second, 10*time.Millisecond)
}
