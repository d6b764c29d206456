package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rishik-kumar/Earthquake-Visualizer/internal/observability"
	"github.com/rishik-kumar/Earthquake-Visualizer/internal/session"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub tracks websocket clients and pushes a small notice whenever the
// session snapshot changes, prompting clients to refetch with their own
// threshold.
type Hub struct {
	logger  *slog.Logger
	metrics *observability.Metrics

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger, metrics *observability.Metrics) *Hub {
	return &Hub{
		logger:  logger,
		metrics: metrics,
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// snapshotNotice is the message broadcast after each completed load.
type snapshotNotice struct {
	Type      string `json:"type"`
	State     string `json:"state"`
	Quakes    int    `json:"quakes"`
	FetchedAt string `json:"fetched_at,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HandleWS upgrades the connection and registers the client.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", "error", err)
		return
	}
	h.add(conn)
	go h.readPump(conn)
}

// NotifyUpdated broadcasts the state of a freshly completed load to every
// connected client. Wired as the session's onUpdate callback.
func (h *Hub) NotifyUpdated(snap session.Snapshot) {
	notice := snapshotNotice{
		Type:   "snapshot_updated",
		State:  snap.State.String(),
		Quakes: len(snap.Quakes),
		Error:  snap.Err,
	}
	if !snap.FetchedAt.IsZero() {
		notice.FetchedAt = snap.FetchedAt.UTC().Format(time.RFC3339)
	}

	data, err := json.Marshal(notice)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			c.Close()
			delete(h.clients, c)
			h.metrics.WebsocketClients.Dec()
		}
	}
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.Close()
		delete(h.clients, c)
		h.metrics.WebsocketClients.Dec()
	}
}

func (h *Hub) add(c *websocket.Conn) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.metrics.WebsocketClients.Inc()
}

func (h *Hub) remove(c *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		h.metrics.WebsocketClients.Dec()
	}
	h.mu.Unlock()
}

// readPump drains client messages so pings are answered and disconnects are
// noticed. Clients never send application data.
func (h *Hub) readPump(c *websocket.Conn) {
	defer func() {
		h.remove(c)
		_ = c.Close()
	}()
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
