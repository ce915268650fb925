package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-note-sync/internal/app"
	"github.com/MKhiriev/go-note-sync/internal/store"
)

// Error codes reported in push responses and error bodies.
const (
	CodeNotFound             = "NOT_FOUND"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeBadRequest           = "BAD_REQUEST"
	CodeUnprocessableContent = "UNPROCESSABLE_CONTENT"
	CodeConflict             = "CONFLICT"
	CodeTimeout              = "TIMEOUT"
	CodeInternalServerError  = "INTERNAL_SERVER_ERROR"
)

var errorCodes = []struct {
	err  error
	code string
}{
	{store.ErrNotFound, CodeNotFound},
	{store.ErrUnauthorized, CodeUnauthorized},
	{ErrInvalidMutationArgs, CodeBadRequest},
	{ErrInvalidSyncRequest, CodeBadRequest},
	{store.ErrInvalidInput, CodeBadRequest},
	{store.ErrAlreadyExists, CodeBadRequest},
	{ErrUnknownMutation, CodeUnprocessableContent},
	{ErrMutationOutOfOrder, CodeUnprocessableContent},
	{store.ErrUnprocessable, CodeUnprocessableContent},
	{store.ErrConflict, CodeConflict},
	{store.ErrTimeout, CodeTimeout},
	{context.DeadlineExceeded, CodeTimeout},
}

// ErrorCode maps err to one of the Code* constants. Unknown errors are
// CodeInternalServerError.
func ErrorCode(err error) string {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return CodeInternalServerError
}

const internalErrorMessage = app.MsgInternalServerError

// ErrorMessage returns the message safe to show to a client: the error text
// for classified errors and a generic text for internal ones.
func ErrorMessage(err error) string {
	if ErrorCode(err) == CodeInternalServerError {
		return internalErrorMessage
	}
	return err.Error()
}
