package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/linesmerrill/report-nui/api"
	"github.com/linesmerrill/report-nui/models"
)

const hubWriteWait = 5 * time.Second

// Publisher pushes notifications to connected overlays
type Publisher interface {
	Publish(n models.Notification) int
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub keeps the websocket connections of overlays and broadcasts to them
type Hub struct {
	// Greeting, when set, is sent to every new connection
	Greeting models.Notification

	clients map[*websocket.Conn]struct{}
	mutex   sync.Mutex
}

// NewHub returns an empty hub
func NewHub(greeting models.Notification) *Hub {
	return &Hub{
		Greeting: greeting,
		clients:  make(map[*websocket.Conn]struct{}),
	}
}

// ServeWS upgrades the request and keeps the connection registered until the
// client goes away
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Warnw("websocket upgrade failed", "error", err)
		return
	}

	h.mutex.Lock()
	if h.Greeting != nil {
		if err := h.write(conn, h.Greeting); err != nil {
			h.mutex.Unlock()
			conn.Close()
			return
		}
	}
	h.clients[conn] = struct{}{}
	n := len(h.clients)
	h.mutex.Unlock()

	api.SetConnectedClients(n)
	zap.S().Infow("overlay connected", "remote", r.RemoteAddr, "clients", n)

	for {
		if _, _, err := conn.NextReader(); err != nil {
			break
		}
	}
	h.remove(conn)
	zap.S().Infow("overlay disconnected", "remote", r.RemoteAddr)
}

// Publish sends n to every connection and returns how many received it.
// Connections that fail to receive are dropped.
func (h *Hub) Publish(n models.Notification) int {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	api.RecordNotification(n.NotificationAction())
	sent := 0
	for conn := range h.clients {
		if err := h.write(conn, n); err != nil {
			zap.S().Warnw("failed to push notification, dropping client",
				"action", n.NotificationAction(),
				"error", err)
			delete(h.clients, conn)
			conn.Close()
			continue
		}
		sent++
	}
	api.SetConnectedClients(len(h.clients))
	return sent
}

// Len returns the number of connected overlays
func (h *Hub) Len() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// write must be called with the mutex held
func (h *Hub) write(conn *websocket.Conn, n models.Notification) error {
	b, err := json.Marshal(n)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(hubWriteWait))
	return conn.WriteMessage(websocket.TextMessage, b)
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mutex.Lock()
	delete(h.clients, conn)
	n := len(h.clients)
	h.mutex.Unlock()
	conn.Close()
	api.SetConnectedClients(n)
}
