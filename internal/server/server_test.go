package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/handler"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

func newTestServer(t *testing.T) *server {
	t.Helper()

	return &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{
			HTTPAddress:    "127.0.0.1:0",
			RequestTimeout: time.Second,
		}),
		gRPCServer: &grpcServer{
			address: "127.0.0.1:0",
			server:  grpc.NewServer(),
		},
		shutdownTimeout: time.Second,
		logger:          logger.Nop(),
	}
}

func TestNewServer_NoTransports(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestServer_Run_StopsOnContextCancel(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return s.gRPCServer.addr() != nil }, 2*time.Second, 10*time.Millisecond)

	conn, err := net.Dial("tcp", s.gRPCServer.addr().String())
	require.NoError(t, err)
	_ = conn.Close()

	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_Run_TransportFailureStopsOthers(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	s := newTestServer(t)
	s.gRPCServer.address = busy.Addr().String()

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	select {
	case err = <-done:
		assert.Error(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after listen failure")
	}
}

func TestGRPCServer_ShutdownWithoutServe(t *testing.T) {
	g := &grpcServer{address: "127.0.0.1:0", server: grpc.NewServer()}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, g.shutdown(ctx))
	assert.Nil(t, g.addr())
}
