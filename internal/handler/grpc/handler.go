// Package grpc implements the gRPC transport of the sync server.
//
// The Replicache service is described by hand and speaks JSON over gRPC
// (content-subtype "json"), so push and pull carry the same bodies as the
// HTTP endpoints.
package grpc

import (
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"google.golang.org/grpc"
)

// Handler is the root gRPC transport handler. It is created once at startup
// and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	tokenSignKey string
	tokenIssuer  string

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// token settings.
func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services:     services,
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

// ServerOptions returns the interceptor chain every call goes through.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withRecovery, h.withTraceID, h.withLogging, h.auth),
	}
}

// Register attaches the Replicache service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&ReplicacheServiceDesc, h)
}
