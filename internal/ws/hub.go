package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"roam/internal/models"
)

// Connection is one client socket belonging to a user. A user may hold
// several (multiple devices).
type Connection struct {
	Conn   *websocket.Conn
	Send   chan []byte
	UserID string
}

// Hub fans match events out to the affected users' live sockets. It is
// push-only; clients never send through it.
type Hub struct {
	mu    sync.Mutex
	conns map[string]map[*Connection]bool
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string]map[*Connection]bool)}
}

func (h *Hub) Register(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[c.UserID] == nil {
		h.conns[c.UserID] = make(map[*Connection]bool)
	}
	h.conns[c.UserID][c] = true
}

func (h *Hub) Unregister(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.conns[c.UserID]; ok && set[c] {
		delete(set, c)
		close(c.Send)
		if len(set) == 0 {
			delete(h.conns, c.UserID)
		}
	}
}

// MatchEvent is the payload pushed to both members of a new match.
type MatchEvent struct {
	Type    string       `json:"type"`
	MatchID string       `json:"matchId"`
	User    *models.User `json:"user"`
}

// NotifyMatch tells userID that they just matched with other.
func (h *Hub) NotifyMatch(userID, matchID string, other *models.User) {
	payload, err := json.Marshal(MatchEvent{Type: "match", MatchID: matchID, User: other})
	if err != nil {
		log.WithError(err).Warn("ws: marshal match event")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.conns[userID] {
		select {
		case c.Send <- payload:
		default:
			// slow client, drop the event rather than block the swipe
		}
	}
}

// WritePump drains c.Send onto the socket until the channel closes or a
// write fails.
func (c *Connection) WritePump() {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
