package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
)

var errorStatusMap = []struct {
	err    error
	status int
}{
	{store.ErrNotFound, http.StatusNotFound},
	{store.ErrUnauthorized, http.StatusUnauthorized},

	{service.ErrInvalidSyncRequest, http.StatusBadRequest},
	{service.ErrInvalidMutationArgs, http.StatusBadRequest},
	{store.ErrInvalidInput, http.StatusBadRequest},
	{store.ErrAlreadyExists, http.StatusBadRequest},

	{service.ErrUnknownMutation, http.StatusUnprocessableEntity},
	{service.ErrMutationOutOfOrder, http.StatusUnprocessableEntity},
	{store.ErrUnprocessable, http.StatusUnprocessableEntity},

	{store.ErrConflict, http.StatusConflict},

	{store.ErrTimeout, http.StatusRequestTimeout},
	{context.DeadlineExceeded, http.StatusRequestTimeout},
}

func statusFromError(err error) int {
	for _, target := range errorStatusMap {
		if errors.Is(err, target.err) {
			return target.status
		}
	}
	return http.StatusInternalServerError
}
