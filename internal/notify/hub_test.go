package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/gorilla/websocket"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()

	hub := NewHub(config.Notifier{PingInterval: time.Minute}, logger.Nop())
	hub.Run()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Subscribe(w, r, r.URL.Query().Get("user"))
	}))

	t.Cleanup(func() {
		_ = hub.Close()
		srv.Close()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, userID string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?user=" + userID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitConnections(t *testing.T, hub *Hub, userID string, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.Connections(userID) == n }, time.Second, 5*time.Millisecond)
}

func TestHub_NotifyPokesEveryConnectionOfUser(t *testing.T) {
	hub, srv := newTestHub(t)

	first := dial(t, srv, "u1")
	second := dial(t, srv, "u1")
	waitConnections(t, hub, "u1", 2)

	require.NoError(t, hub.Notify(context.Background(), "u1"))

	for _, conn := range []*websocket.Conn{first, second} {
		_ = conn.SetReadDeadline(time.Now().Add(time.Second))
		kind, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, websocket.TextMessage, kind)
		assert.JSONEq(t, `{"type":"poke"}`, string(msg))
	}
}

func TestHub_NotifyIgnoresOtherUsers(t *testing.T) {
	hub, srv := newTestHub(t)

	other := dial(t, srv, "u2")
	waitConnections(t, hub, "u2", 1)

	require.NoError(t, hub.Notify(context.Background(), "u1"))

	_ = other.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err := other.ReadMessage()
	require.Error(t, err)
}

func TestHub_DisconnectUnregisters(t *testing.T) {
	hub, srv := newTestHub(t)

	conn := dial(t, srv, "u1")
	waitConnections(t, hub, "u1", 1)

	require.NoError(t, conn.Close())
	waitConnections(t, hub, "u1", 0)
}

func TestHub_NotifyDoesNotBlockOnFullBuffer(t *testing.T) {
	hub := NewHub(config.Notifier{SendBuffer: 1}, logger.Nop())
	c := &connection{id: ulid.Make(), userID: "u1", send: make(chan []byte, 1)}
	require.NoError(t, hub.register(c))

	done := make(chan struct{})
	go func() {
		_ = hub.Notify(context.Background(), "u1")
		_ = hub.Notify(context.Background(), "u1")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a slow connection")
	}
	assert.Len(t, c.send, 1)
}

func TestHub_Closed(t *testing.T) {
	hub := NewHub(config.Notifier{}, logger.Nop())
	hub.Run()
	require.NoError(t, hub.Close())
	require.NoError(t, hub.Close())

	assert.ErrorIs(t, hub.Notify(context.Background(), "u1"), ErrHubClosed)
	assert.ErrorIs(t, hub.register(&connection{id: ulid.Make(), userID: "u1"}), ErrHubClosed)
}

func TestHub_CloseDisconnectsClients(t *testing.T) {
	hub, srv := newTestHub(t)

	conn := dial(t, srv, "u1")
	waitConnections(t, hub, "u1", 1)

	require.NoError(t, hub.Close())

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

func TestNew(t *testing.T) {
	n, err := New(config.Notifier{}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &Hub{}, n)

	n, err = New(config.Notifier{Driver: config.NotifierDriverNop}, logger.Nop())
	require.NoError(t, err)
	assert.NoError(t, n.Notify(context.Background(), "u1"))
	assert.ErrorIs(t, n.Subscribe(nil, nil, "u1"), ErrDisabled)

	_, err = New(config.Notifier{Driver: "ably"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
