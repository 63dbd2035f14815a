package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/you-humble/kicad-dblib/internal/converter"
	"github.com/you-humble/kicad-dblib/internal/metrics"
	"github.com/you-humble/kicad-dblib/internal/model"
	"github.com/you-humble/kicad-dblib/platform/logger"
	catalogv1 "github.com/you-humble/kicad-dblib/pkg/api/catalog/v1"
)

const (
	EventPartsRefreshed = "parts_refreshed"

	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second

	// sendBuffer is how many listings a client may lag behind before it is
	// dropped.
	sendBuffer = 16
)

// client owns one connection. Only writePump writes to conn.
type client struct {
	conn *websocket.Conn
	send chan []byte
	quit chan struct{}
	once sync.Once
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
		quit: make(chan struct{}),
	}
}

// stop makes writePump send a close frame and close the connection.
func (c *client) stop() { c.once.Do(func() { close(c.quit) }) }

func (c *client) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				logger.Warn(ctx, "ws write", logger.ErrorF(err))
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-c.quit:
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"),
				time.Now().Add(writeWait))
			return
		}
	}
}

// Hub presents catalogue listings to connected browsers.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// ShowParts queues the listing for every client and returns without waiting
// for the writes. A client whose queue is full is dropped.
func (h *Hub) ShowParts(ctx context.Context, filter model.PartsFilter, rows []model.PartRow) error {
	data, err := json.Marshal(catalogv1.Event{
		Type:          EventPartsRefreshed,
		ComponentType: string(filter.ComponentType),
		Parts:         converter.PartRowsToAPI(rows),
	})
	if err != nil {
		return fmt.Errorf("ws: marshal event: %w", err)
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- data:
		default:
			logger.Warn(ctx, "ws client lagging, dropped", logger.Int("queued", len(c.send)))
			h.unregister(c)
		}
	}

	return nil
}

func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// ServeHTTP upgrades the connection and reads from it until the peer goes
// away. Writes happen on the client's own goroutine.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn(ctx, "ws upgrade", logger.ErrorF(err))
		return
	}

	c := newClient(conn)
	h.register(c)
	logger.Info(ctx, "ws client connected", logger.Int("clients", h.Clients()))

	go c.writePump(context.WithoutCancel(ctx))

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.unregister(c)
	logger.Info(ctx, "ws client disconnected")
}

// Close disconnects every client.
func (h *Hub) Close(context.Context) error {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()

	for c := range clients {
		c.stop()
	}
	metrics.WSClientsActive.Set(0)

	return nil
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	metrics.WSClientsActive.Inc()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()

	if ok {
		metrics.WSClientsActive.Dec()
		c.stop()
	}
}
