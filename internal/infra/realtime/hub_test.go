package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"folio/internal/domain/service"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func startTestServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := hub.Serve(w, r, "admin"); errors.Is(err, ErrHubStopped) {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
		}
	}))
	t.Cleanup(server.Close)

	return server
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

// readUntil returns the first message of the wanted type.
func readUntil(t *testing.T, conn *websocket.Conn, msgType string) map[string]any {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	for {
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err)

		var msg struct {
			Type string         `json:"type"`
			Data map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &msg))
		if msg.Type == msgType {
			return msg.Data
		}
	}
}

func waitForSessions(t *testing.T, hub *Hub, n int) {
	t.Helper()

	require.Eventually(t, func() bool { return hub.SessionCount() == n }, 3*time.Second, 10*time.Millisecond)
}

func TestHub_BroadcastReachesSessions(t *testing.T) {
	hub := newHub(newDiscardLogger(), nil)
	hub.Start()
	defer hub.Stop()

	server := startTestServer(t, hub)
	first := dial(t, server)
	second := dial(t, server)
	waitForSessions(t, hub, 2)

	hub.Broadcast(context.Background(), &service.LiveMessage{
		Type: service.LiveMessageVisitorEvent,
		Data: map[string]string{"page": "/about"},
	})

	for _, conn := range []*websocket.Conn{first, second} {
		data := readUntil(t, conn, service.LiveMessageVisitorEvent)
		assert.Equal(t, "/about", data["page"])
	}
}

func TestHub_AnnouncesSessionCount(t *testing.T) {
	hub := newHub(newDiscardLogger(), nil)
	hub.Start()
	defer hub.Stop()

	conn := dial(t, startTestServer(t, hub))

	data := readUntil(t, conn, service.LiveMessageSessionCount)
	assert.EqualValues(t, 1, data["count"])
}

func TestHub_DisconnectUnregisters(t *testing.T) {
	hub := newHub(newDiscardLogger(), nil)
	hub.Start()
	defer hub.Stop()

	conn := dial(t, startTestServer(t, hub))
	waitForSessions(t, hub, 1)

	require.NoError(t, conn.Close())
	waitForSessions(t, hub, 0)
}

func TestHub_StopClosesSessions(t *testing.T) {
	hub := newHub(newDiscardLogger(), nil)
	hub.Start()

	server := startTestServer(t, hub)
	conn := dial(t, server)
	waitForSessions(t, hub, 1)

	hub.Stop()
	assert.Equal(t, 0, hub.SessionCount())

	// Drain until the server closes the session.
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	var readErr error
	for readErr == nil {
		_, _, readErr = conn.ReadMessage()
	}
	assert.True(t, websocket.IsCloseError(readErr, websocket.CloseGoingAway), readErr)

	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestHub_StopDuringHandshakeClosesSession(t *testing.T) {
	hub := newHub(newDiscardLogger(), nil)
	hub.Start()
	hub.upgrader.CheckOrigin = func(*http.Request) bool {
		hub.Stop()

		return true
	}

	serveErr := make(chan error, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serveErr <- hub.Serve(w, r, "admin")
	}))
	t.Cleanup(server.Close)

	conn := dial(t, server)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	_, _, readErr := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(readErr, websocket.CloseGoingAway), readErr)
	require.NoError(t, <-serveErr)
	assert.Equal(t, 0, hub.SessionCount())
}

func TestHub_BroadcastDropsWhenBufferFull(t *testing.T) {
	hub := newHub(newDiscardLogger(), nil)
	slow := &client{send: make(chan []byte, 1), username: "slow"}
	hub.clients[slow] = struct{}{}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 5 {
			hub.Broadcast(context.Background(), &service.LiveMessage{Type: service.LiveMessageVisitorEvent})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a full session buffer")
	}
	assert.Len(t, slow.send, 1)
}

func TestOriginChecker(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")

	assert.True(t, originChecker(nil)(req))
	assert.True(t, originChecker([]string{"*"})(req))
	assert.False(t, originChecker([]string{"https://admin.example.com"})(req))

	req.Header.Set("Origin", "https://admin.example.com")
	assert.True(t, originChecker([]string{"https://admin.example.com"})(req))
}
