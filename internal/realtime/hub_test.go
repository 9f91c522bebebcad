package realtime

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func newTestServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub()
	r := gin.New()
	r.GET("/ws/notify", Handler(hub))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/notify"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial websocket: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d connected clients, got %d", want, hub.ClientCount())
}

func TestPublishReachesAllConnectedClients(t *testing.T) {
	hub, srv := newTestServer(t)

	first := dial(t, srv)
	second := dial(t, srv)
	waitForClients(t, hub, 2)

	hub.Publish("task_new", "New task added: Shopping list")

	for _, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("failed to read broadcast: %v", err)
		}
		if msg.Type != "task_new" {
			t.Fatalf("expected type task_new, got %q", msg.Type)
		}
		if msg.Content != "New task added: Shopping list" {
			t.Fatalf("unexpected content %q", msg.Content)
		}
	}
}

func TestLateSubscriberGetsNoReplay(t *testing.T) {
	hub, srv := newTestServer(t)

	hub.Publish("task_new", "published before anyone connected")

	conn := dial(t, srv)
	waitForClients(t, hub, 1)

	hub.Publish("member_new", "New member joined: Bob")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("failed to read broadcast: %v", err)
	}
	if msg.Type != "member_new" {
		t.Fatalf("expected the post-connect message, got type %q", msg.Type)
	}
}

func TestDisconnectedClientIsRemoved(t *testing.T) {
	hub, srv := newTestServer(t)

	conn := dial(t, srv)
	waitForClients(t, hub, 1)

	conn.Close()
	waitForClients(t, hub, 0)

	// Publishing to an empty hub must be a no-op, not an error.
	hub.Publish("task_deleted", "Task deleted")
}

func TestPublishOrderPreservedPerPublisher(t *testing.T) {
	hub, srv := newTestServer(t)

	conn := dial(t, srv)
	waitForClients(t, hub, 1)

	hub.Publish("chat_new", "first")
	hub.Publish("chat_new", "second")
	hub.Publish("chat_new", "third")

	for _, want := range []string{"first", "second", "third"} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("failed to read broadcast: %v", err)
		}
		if msg.Content != want {
			t.Fatalf("expected %q, got %q", want, msg.Content)
		}
	}
}
