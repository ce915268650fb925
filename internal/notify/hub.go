// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/gorilla/websocket"
	"github.com/oklog/ulid/v2"
)

const (
	defaultSendBuffer   = 8
	defaultPingInterval = 30 * time.Second
	writeWait           = 10 * time.Second
	maxMessageSize      = 512
)

var pokeMessage = []byte(`{"type":"poke"}`)

// connection is one registered websocket. send is drained by the
// connection's writer goroutine.
type connection struct {
	id     ulid.ULID
	userID string
	conn   *websocket.Conn
	send   chan []byte
}

// Hub fans pokes out to the websockets of a user.
type Hub struct {
	upgrader     websocket.Upgrader
	sendBuffer   int
	pingInterval time.Duration

	mu     sync.Mutex
	conns  map[string]map[ulid.ULID]*connection
	closed bool

	done chan struct{}
	wg   sync.WaitGroup

	logger *logger.Logger
}

func NewHub(cfg config.Notifier, log *logger.Logger) *Hub {
	sendBuffer := cfg.SendBuffer
	if sendBuffer <= 0 {
		sendBuffer = defaultSendBuffer
	}
	pingInterval := cfg.PingInterval
	if pingInterval <= 0 {
		pingInterval = defaultPingInterval
	}

	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// any origin, the endpoint requires a bearer token
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		sendBuffer:   sendBuffer,
		pingInterval: pingInterval,
		conns:        make(map[string]map[ulid.ULID]*connection),
		done:         make(chan struct{}),
		logger:       log,
	}
}

// Run starts the keepalive loop that pings every registered socket. It
// returns immediately; Close stops the loop.
func (h *Hub) Run() {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		t := time.NewTicker(h.pingInterval)
		defer t.Stop()

		for {
			select {
			case <-h.done:
				return
			case <-t.C:
				h.pingAll()
			}
		}
	}()
}

func (h *Hub) pingAll() {
	deadline := time.Now().Add(writeWait)
	for _, c := range h.snapshot() {
		if err := c.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
			h.logger.Debug().Err(err).
				Str("func", "Hub.pingAll").
				Str("connection_id", c.id.String()).
				Msg("ping failed, closing connection")
			_ = c.conn.Close()
		}
	}
}

func (h *Hub) snapshot() []*connection {
	h.mu.Lock()
	defer h.mu.Unlock()

	all := make([]*connection, 0)
	for _, userConns := range h.conns {
		for _, c := range userConns {
			all = append(all, c)
		}
	}
	return all
}

func (h *Hub) Notify(ctx context.Context, userID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHubClosed
	}

	for _, c := range h.conns[userID] {
		select {
		case c.send <- pokeMessage:
		default:
			logger.FromContext(ctx).Debug().
				Str("func", "Hub.Notify").
				Str("user_id", userID).
				Str("connection_id", c.id.String()).
				Msg("send buffer full, poke dropped")
		}
	}
	return nil
}

func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request, userID string) error {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpgrading, err)
	}

	c := &connection{
		id:     ulid.Make(),
		userID: userID,
		conn:   ws,
		send:   make(chan []byte, h.sendBuffer),
	}
	if err = h.register(c); err != nil {
		_ = ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		_ = ws.Close()
		return err
	}

	log := logger.FromRequest(r)
	log.Info().
		Str("func", "Hub.Subscribe").
		Str("user_id", userID).
		Str("connection_id", c.id.String()).
		Msg("client subscribed")

	go h.writeLoop(c)
	h.readLoop(c)

	h.unregister(c)
	log.Info().
		Str("func", "Hub.Subscribe").
		Str("user_id", userID).
		Str("connection_id", c.id.String()).
		Msg("client unsubscribed")
	return nil
}

func (h *Hub) register(c *connection) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHubClosed
	}

	userConns, ok := h.conns[c.userID]
	if !ok {
		userConns = make(map[ulid.ULID]*connection)
		h.conns[c.userID] = userConns
	}
	userConns[c.id] = c
	return nil
}

// unregister removes c and stops its writer. It is safe to call twice.
func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	userConns, ok := h.conns[c.userID]
	if !ok {
		return
	}
	if _, ok = userConns[c.id]; !ok {
		return
	}

	delete(userConns, c.id)
	if len(userConns) == 0 {
		delete(h.conns, c.userID)
	}
	close(c.send)
}

// readLoop discards client frames and returns once the peer is gone. Reading
// is what processes pong and close frames.
func (h *Hub) readLoop(c *connection) {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(2 * h.pingInterval))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(2 * h.pingInterval))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug().Err(err).
					Str("func", "Hub.readLoop").
					Str("connection_id", c.id.String()).
					Msg("connection closed unexpectedly")
			}
			return
		}
	}
}

func (h *Hub) writeLoop(c *connection) {
	defer c.conn.Close()

	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.logger.Debug().Err(err).
				Str("func", "Hub.writeLoop").
				Str("connection_id", c.id.String()).
				Msg("error writing poke")
			return
		}
	}

	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
}

// Connections reports how many sockets userID has open.
func (h *Hub) Connections(userID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns[userID])
}

// Close stops the keepalive loop and disconnects every client.
func (h *Hub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	conns := make([]*connection, 0)
	for _, userConns := range h.conns {
		for _, c := range userConns {
			conns = append(conns, c)
		}
	}
	h.mu.Unlock()

	close(h.done)
	h.wg.Wait()

	for _, c := range conns {
		h.unregister(c)
	}
	return nil
}
