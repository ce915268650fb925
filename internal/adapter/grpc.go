package adapter

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	myGRPC "github.com/MKhiriev/go-note-sync/internal/handler/grpc"
)

type grpcServerAdapter struct {
	conn grpc.ClientConnInterface

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewGRPCServerAdapter builds the gRPC implementation of [ServerAdapter] on
// an established connection. The caller owns conn.
func NewGRPCServerAdapter(conn grpc.ClientConnInterface, logger *logger.Logger) ServerAdapter {
	return &grpcServerAdapter{conn: conn, logger: logger}
}

func (g *grpcServerAdapter) SetToken(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = strings.TrimSpace(token)
}

func (g *grpcServerAdapter) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

func (g *grpcServerAdapter) Push(ctx context.Context, req models.PushRequest) (models.PushResponse, error) {
	var resp models.PushResponse
	if err := g.invoke(ctx, myGRPC.PushMethod, &req, &resp); err != nil {
		return models.PushResponse{}, err
	}
	return resp, nil
}

func (g *grpcServerAdapter) Pull(ctx context.Context, req models.PullRequest) (models.PullResponse, error) {
	var resp models.PullResponse
	if err := g.invoke(ctx, myGRPC.PullMethod, &req, &resp); err != nil {
		return models.PullResponse{}, err
	}
	return resp, nil
}

func (g *grpcServerAdapter) invoke(ctx context.Context, method string, req, resp any) error {
	if token := g.Token(); token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
	}

	err := g.conn.Invoke(ctx, method, req, resp, grpc.CallContentSubtype(myGRPC.CodecName))
	if err != nil {
		g.logger.Debug().Err(err).Str("method", method).Msg("grpc call failed")
		return mapGRPCError(err)
	}
	return nil
}
