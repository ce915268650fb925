package validators

import (
	"context"
	"fmt"
	"math"

	"github.com/MKhiriev/go-note-sync/models"
)

const (
	FieldClientGroupID = "client_group_id"
	FieldMutations     = "mutations"
	FieldCookie        = "cookie"
)

// SyncRequestValidator validates push and pull envelopes.
type SyncRequestValidator struct {
}

func NewSyncRequestValidator() Validator {
	return &SyncRequestValidator{}
}

func (v *SyncRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PushRequest:
		return v.validatePush(ctx, value, fields...)
	case *models.PushRequest:
		return v.validatePush(ctx, *value, fields...)

	case models.PullRequest:
		return v.validatePull(ctx, value, fields...)
	case *models.PullRequest:
		return v.validatePull(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SyncRequestValidator) validatePush(_ context.Context, request models.PushRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientGroupID, FieldMutations}
	}

	for _, f := range fields {
		switch f {
		case FieldClientGroupID:
			if request.ClientGroupID == "" {
				return ErrInvalidClientGroupID
			}
		case FieldMutations:
			for i, mutation := range request.Mutations {
				if err := validateMutation(mutation); err != nil {
					return fmt.Errorf("validation error at mutation index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateMutation(mutation models.Mutation) error {
	if mutation.ID <= 0 {
		return ErrInvalidMutationID
	}
	if mutation.ClientID == "" {
		return ErrInvalidClientID
	}
	if mutation.Name == "" {
		return ErrInvalidMutationName
	}
	return nil
}

func (v *SyncRequestValidator) validatePull(_ context.Context, request models.PullRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientGroupID, FieldCookie}
	}

	for _, f := range fields {
		switch f {
		case FieldClientGroupID:
			if request.ClientGroupID == "" {
				return ErrInvalidClientGroupID
			}
		case FieldCookie:
			if request.Cookie != nil && (request.Cookie.Order < 0 || request.Cookie.Order == math.MaxInt64) {
				return ErrInvalidCookie
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
