package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/MKhiriev/go-note-sync/internal/config"
	myGRPC "github.com/MKhiriev/go-note-sync/internal/handler/grpc"
	"google.golang.org/grpc"
)

type grpcServer struct {
	address string
	server  *grpc.Server

	mu       sync.Mutex
	listener net.Listener
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server) *grpcServer {
	s := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(s)

	return &grpcServer{
		address: cfg.GRPCAddress,
		server:  s,
	}
}

func (g *grpcServer) name() string { return "gRPC" }

func (g *grpcServer) serve() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", g.address, err)
	}

	g.mu.Lock()
	g.listener = lis
	g.mu.Unlock()

	if err = g.server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// shutdown waits for in-flight calls until ctx is done, then stops hard.
func (g *grpcServer) shutdown(ctx context.Context) error {
	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}

func (g *grpcServer) addr() net.Addr {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.listener == nil {
		return nil
	}
	return g.listener.Addr()
}
