package grpc

import (
	"context"

	"github.com/MKhiriev/go-note-sync/internal/app"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (h *Handler) Push(ctx context.Context, request *models.PushRequest) (*models.PushResponse, error) {
	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		return nil, status.Error(codes.Unauthenticated, app.MsgNoUserIDProvided)
	}

	response, err := h.services.SyncService.Push(ctx, userID, *request)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Handler.Push").Msg("push failed")
		return nil, statusFromError(err)
	}
	return &response, nil
}

func (h *Handler) Pull(ctx context.Context, request *models.PullRequest) (*models.PullResponse, error) {
	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		return nil, status.Error(codes.Unauthenticated, app.MsgNoUserIDProvided)
	}

	response, err := h.services.SyncService.Pull(ctx, userID, *request)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Handler.Pull").Msg("pull failed")
		return nil, statusFromError(err)
	}
	return &response, nil
}
