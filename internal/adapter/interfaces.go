// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides client-side access to the note sync server.
//
// [ServerAdapter] hides the transport: [NewHTTPServerAdapter] talks to the
// REST endpoints with resty and [NewGRPCServerAdapter] calls the
// notesync.Replicache gRPC service with the JSON codec.
//
// Failed calls are mapped to the sentinel errors in errors.go so callers can
// use [errors.Is] regardless of the transport (e.g. [ErrUnauthorized] for an
// HTTP 401 or a gRPC Unauthenticated status).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

// ServerAdapter is the client view of the sync server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every push and pull.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Push sends a batch of mutations. Mutation failures are reported in the
	// response, not as an error.
	Push(ctx context.Context, req models.PushRequest) (models.PushResponse, error)

	// Pull asks for the patch since req.Cookie.
	Pull(ctx context.Context, req models.PullRequest) (models.PullResponse, error)
}
