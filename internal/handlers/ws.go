package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"roam/internal/middleware"
	"roam/internal/store"
	"roam/internal/utils"
	"roam/internal/ws"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler upgrades GET /ws to a websocket that streams match events to
// the authenticated user. The token rides in the query string because
// browser websocket clients cannot set an Authorization header.
type WSHandler struct {
	Hub       *ws.Hub
	Users     middleware.UserGetter
	JWTSecret string
}

func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "token required", http.StatusUnauthorized)
		return
	}
	userID, _, err := utils.ParseJWT(token, h.JWTSecret)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}
	if _, err := h.Users.GetUserByID(r.Context(), userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("ws: upgrade failed")
		return
	}

	c := &ws.Connection{Conn: conn, Send: make(chan []byte, 8), UserID: userID}
	h.Hub.Register(c)
	go c.WritePump()

	// Reads only service close/ping frames; any client payload is ignored
	// and a read error tears the connection down.
	go func() {
		defer h.Hub.Unregister(c)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
