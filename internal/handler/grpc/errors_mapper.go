package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodeMap = []struct {
	err  error
	code codes.Code
}{
	{store.ErrNotFound, codes.NotFound},
	{store.ErrUnauthorized, codes.PermissionDenied},
	{service.ErrInvalidSyncRequest, codes.InvalidArgument},
	{service.ErrInvalidMutationArgs, codes.InvalidArgument},
	{store.ErrInvalidInput, codes.InvalidArgument},
	{store.ErrAlreadyExists, codes.InvalidArgument},
	{service.ErrUnknownMutation, codes.FailedPrecondition},
	{service.ErrMutationOutOfOrder, codes.FailedPrecondition},
	{store.ErrUnprocessable, codes.FailedPrecondition},
	{store.ErrConflict, codes.Aborted},
	{store.ErrTimeout, codes.DeadlineExceeded},
	{context.DeadlineExceeded, codes.DeadlineExceeded},
}

// statusFromError converts a service error into a status error carrying the
// client-safe message.
func statusFromError(err error) error {
	for _, target := range errorCodeMap {
		if errors.Is(err, target.err) {
			return status.Error(target.code, service.ErrorMessage(err))
		}
	}
	return status.Error(codes.Internal, service.ErrorMessage(err))
}
