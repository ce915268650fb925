package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/validators"
	"github.com/MKhiriev/go-note-sync/models"
)

type SyncValidationService struct {
	inner     SyncService
	validator validators.Validator
}

func NewSyncValidationService() SyncServiceWrapper {
	return &SyncValidationService{
		validator: validators.NewSyncRequestValidator(),
	}
}

func (v *SyncValidationService) Push(ctx context.Context, userID string, request models.PushRequest) (models.PushResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.PushResponse{}, fmt.Errorf("%w: %w", ErrInvalidSyncRequest, err)
	}
	return v.inner.Push(ctx, userID, request)
}

func (v *SyncValidationService) Pull(ctx context.Context, userID string, request models.PullRequest) (models.PullResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.PullResponse{}, fmt.Errorf("%w: %w", ErrInvalidSyncRequest, err)
	}
	return v.inner.Pull(ctx, userID, request)
}

func (v *SyncValidationService) Wrap(wrapped SyncService) SyncService {
	v.inner = wrapped
	return v
}
