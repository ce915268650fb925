//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=SyncServiceWrapper

package service

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

// SyncService implements the push and pull endpoints for one authenticated
// user.
type SyncService interface {
	// Push applies mutations in order. Per-mutation failures are reported in
	// the response; an error means the push itself failed.
	Push(ctx context.Context, userID string, request models.PushRequest) (models.PushResponse, error)
	// Pull returns the patch from the request cookie to the current state.
	Pull(ctx context.Context, userID string, request models.PullRequest) (models.PullResponse, error)
}

// MutationProcessor applies one mutation in its own transaction.
type MutationProcessor interface {
	// ProcessMutation runs the mutation handler unless errorMode is set, then
	// advances the client's last mutation id.
	ProcessMutation(ctx context.Context, userID, clientGroupID string, mutation models.Mutation, errorMode bool) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) error
}

// Notifier wakes up the other connections of a user after a push.
type Notifier interface {
	Notify(ctx context.Context, userID string) error
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// SyncServiceWrapper decorates a SyncService, e.g. with request validation.
type SyncServiceWrapper interface {
	Wrap(SyncService) SyncService
}
