package grpc

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/app"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	authorizationMetadata = "authorization"
	traceIDMetadata       = "x-trace-id"
)

func firstMetadata(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

func (h *Handler) withRecovery(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if p := recover(); p != nil {
			h.logger.Error().
				Str("func", "*Handler.withRecovery").
				Str("method", info.FullMethod).
				Interface("panic", p).
				Bytes("stack", debug.Stack()).
				Msg("panic in gRPC handler")
			err = status.Error(codes.Internal, app.MsgInternalServerError)
		}
	}()
	return next(ctx, req)
}

func (h *Handler) withTraceID(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	traceID := firstMetadata(ctx, traceIDMetadata)
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDMetadata, traceID))
	return next(l.WithContext(ctx), req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()
	return resp, err
}

// auth checks the bearer token in the "authorization" metadata the same way
// the HTTP middleware checks the header.
func (h *Handler) auth(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	log := logger.FromContext(ctx)

	header := firstMetadata(ctx, authorizationMetadata)
	if header == "" {
		log.Error().Str("func", "*Handler.auth").Msg(app.MsgMissingAuthorization)
		return nil, status.Error(codes.Unauthenticated, app.MsgMissingAuthorization)
	}

	tokenString, err := utils.ParseBearerToken(header)
	if err != nil {
		log.Err(err).Str("func", "*Handler.auth").Send()
		return nil, status.Error(codes.Unauthenticated, app.MsgInvalidAuthorization)
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, h.tokenSignKey, h.tokenIssuer)
	if err != nil {
		log.Err(err).Str("func", "*Handler.auth").Msg("error occurred during parsing token")
		return nil, status.Error(codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid)
	}

	return next(utils.WithUserID(ctx, token.UserID), req)
}
