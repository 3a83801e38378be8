package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/braindead-dev/LinkU/internal/entities"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	sendBuffer = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true }, // cors is handled upstream
}

// ws streams freshly inserted messages addressed to the connected user.
// Browsers cannot set headers on websocket dials, so the token query
// parameter stands in for the Authorization header.
func (s server) ws(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if userID == r.Header.Get("Authorization") {
		userID = ""
	}
	if userID == "" {
		userID = r.URL.Query().Get("token")
	}
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Debug("failed to upgrade websocket")
		return
	}

	send := make(chan *entities.Message, sendBuffer)

	unsubscribe := s.broker.Subscribe(userID, func(m *entities.Message) {
		select {
		case send <- m:
		default: // slow consumer, drop and let it catch up from storage
		}
	})

	go s.readPump(conn, unsubscribe)
	s.writePump(conn, send)
}

// readPump discards inbound frames, keeps the pong deadline fresh and
// releases the subscription when the peer goes away.
func (s server) readPump(conn *websocket.Conn, unsubscribe func()) {
	defer func() {
		unsubscribe()
		_ = conn.Close()
	}()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	conn.SetReadLimit(maxBodySize)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s server) writePump(conn *websocket.Conn, send <-chan *entities.Message) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case m := <-send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(toAPIMessage(m)); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
