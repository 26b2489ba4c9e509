// Package realtime pushes live notifications to connected admin dashboards over websockets.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"sync"
	"time"

	"folio/config"
	"folio/internal/domain/service"
	"folio/internal/errors"

	"github.com/gorilla/websocket"
	"go.uber.org/fx"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 32
)

// ErrHubStopped is returned by Serve when the hub is not accepting sessions.
var ErrHubStopped = errors.New("live hub is not running")

type client struct {
	conn     *websocket.Conn
	send     chan []byte
	username string
}

// Hub tracks admin websocket sessions and fans messages out to them.
// Each session has a buffered queue drained by its own writer goroutine;
// a full queue drops the message for that session only.
type Hub struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]struct{}
	running bool
	cancel  context.CancelFunc
	done    chan struct{}

	// changes coalesces session count updates for the run loop.
	changes chan struct{}
}

// HubParams holds dependencies for the hub, injected by Fx
type HubParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewHub builds the hub and binds its run loop to the application lifecycle.
func NewHub(params HubParams) *Hub {
	hub := newHub(params.Logger, params.Config.HTTP.CORSOrigins)

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			hub.Start()

			return nil
		},
		OnStop: func(_ context.Context) error {
			hub.Stop()

			return nil
		},
	})

	return hub
}

func newHub(logger *slog.Logger, allowedOrigins []string) *Hub {
	return &Hub{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		clients: make(map[*client]struct{}),
		changes: make(chan struct{}, 1),
	}
}

// originChecker allows any origin when the list is empty or contains "*".
func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 || slices.Contains(allowed, "*") {
		return func(*http.Request) bool { return true }
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if _, err := url.Parse(origin); err != nil {
			return false
		}

		return slices.Contains(allowed, origin)
	}
}

// Start begins accepting sessions and runs the announcement loop.
func (h *Hub) Start() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	h.running = true
	h.cancel = cancel
	h.done = make(chan struct{})

	go h.run(ctx, h.done)
}

// Stop closes every session and waits for the run loop to exit.
func (h *Hub) Stop() {
	h.mu.Lock()
	if !h.running {
		h.mu.Unlock()

		return
	}
	h.running = false
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
	cancel, done := h.cancel, h.done
	h.mu.Unlock()

	cancel()
	<-done
	h.logger.Info("Live hub stopped")
}

func (h *Hub) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return
		case <-h.changes:
			h.Broadcast(ctx, &service.LiveMessage{
				Type: service.LiveMessageSessionCount,
				Data: map[string]int{"count": h.SessionCount()},
			})
		}
	}
}

// Serve upgrades the request and registers the session. It returns once the
// session's pumps are running. ErrHubStopped is only returned before the
// upgrade, while the response can still be written.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, username string) error {
	h.mu.RLock()
	running := h.running
	h.mu.RUnlock()
	if !running {
		return ErrHubStopped
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already written the HTTP error response.
		return errors.Wrap(err, "failed to upgrade live session")
	}

	c := &client{
		conn:     conn,
		send:     make(chan []byte, sendBufferSize),
		username: username,
	}
	if !h.add(c) {
		// The hub stopped during the handshake and the connection is hijacked,
		// so the refusal goes out as a close frame.
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()
		h.logger.Info("Live session refused, hub stopped", slog.String("username", username))

		return nil
	}

	h.logger.Info("Live session connected",
		slog.String("username", username),
		slog.String("remote_addr", r.RemoteAddr),
	)

	go h.writePump(c)
	go h.readPump(c)

	return nil
}

// Broadcast queues msg for every session without blocking.
func (h *Hub) Broadcast(ctx context.Context, msg *service.LiveMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to encode live message", slog.Any("error", err))

		return
	}

	dropped := 0
	h.mu.RLock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			dropped++
		}
	}
	h.mu.RUnlock()

	if dropped > 0 {
		h.logger.DebugContext(ctx, "Live message dropped for slow sessions",
			slog.String("type", msg.Type),
			slog.Int("dropped", dropped),
		)
	}
}

// SessionCount returns the number of connected sessions.
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

func (h *Hub) add(c *client) bool {
	h.mu.Lock()
	if !h.running {
		h.mu.Unlock()

		return false
	}
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	h.notifyChange()

	return true
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()

	if ok {
		h.logger.Info("Live session disconnected", slog.String("username", c.username))
		h.notifyChange()
	}
}

func (h *Hub) notifyChange() {
	select {
	case h.changes <- struct{}{}:
	default:
	}
}

// readPump discards inbound frames and detects disconnects.
func (h *Hub) readPump(c *client) {
	defer h.remove(c)

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump is the only writer on the connection.
func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))

				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.remove(c)

				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.remove(c)

				return
			}
		}
	}
}

func asBroadcaster(hub *Hub) service.Broadcaster {
	return hub
}

// Module provides the live hub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewHub, asBroadcaster),
)
