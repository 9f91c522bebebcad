package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

// Message is the payload pushed to every connected client. Clients filter
// by Type on their side; the server does no per-client scoping.
type Message struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// subscriber is a single connected WebSocket client.
type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans published messages out to all currently connected clients.
// There is no backlog: clients only see messages published after they
// connected.
type Hub struct {
	mu   sync.RWMutex
	subs map[*subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[*subscriber]struct{}),
	}
}

// Publish sends the message to every connected client. Delivery is
// best-effort: a client whose send queue is full is skipped, and a failed
// write only disconnects that client.
func (h *Hub) Publish(eventType, content string) {
	data, err := json.Marshal(Message{Type: eventType, Content: content})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subs {
		select {
		case s.send <- data:
		default:
			// Client too slow — skip
		}
	}
}

// ClientCount reports how many clients are currently connected.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) register(s *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs[s] = struct{}{}
}

func (h *Hub) unregister(s *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[s]; ok {
		delete(h.subs, s)
		close(s.send)
	}
}

// ServeWS registers the connection and blocks until it disconnects.
func (h *Hub) ServeWS(conn *websocket.Conn) {
	s := &subscriber{
		conn: conn,
		send: make(chan []byte, 256),
	}

	h.register(s)

	go h.writePump(s)
	h.readPump(s)
}

// readPump discards inbound frames; the notify channel is server-push only.
// It exists to detect disconnects and answer pings.
func (h *Hub) readPump(s *subscriber) {
	defer func() {
		h.unregister(s)
		s.conn.Close()
	}()

	s.conn.SetReadLimit(maxMsgSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) writePump(s *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
