//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock -exclude_interfaces=querier

package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-note-sync/models"
)

// NoteRepository reads and writes notes. Every write is scoped to the owner.
type NoteRepository interface {
	// GetByID returns ErrNotFound for a missing note and ErrUnauthorized for
	// a note of another user.
	GetByID(ctx context.Context, id, userID string) (models.Note, error)
	// Create returns ErrAlreadyExists when the id is taken.
	Create(ctx context.Context, note models.Note) (models.Note, error)
	// Update applies the non-nil fields and advances the version.
	Update(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	Delete(ctx context.Context, id, userID string) error
	// FindMany returns full rows for ids; an empty ids slice runs no query.
	FindMany(ctx context.Context, ids []string) ([]models.Note, error)
	// FindMeta returns id and version of every note of the user.
	FindMeta(ctx context.Context, userID string) ([]models.RowMeta, error)
}

// ClientRepository tracks the last applied mutation per client.
type ClientRepository interface {
	// GetByID synthesizes a client with LastMutationID 0 when unseen.
	GetByID(ctx context.Context, id, clientGroupID string) (models.Client, error)
	Upsert(ctx context.Context, client models.Client) error
	// FindMeta returns id and last mutation id of every client of the group.
	FindMeta(ctx context.Context, clientGroupID string) ([]models.RowMeta, error)
}

// ClientGroupRepository tracks the CVR version per client group.
type ClientGroupRepository interface {
	// GetByID synthesizes a group with CVRVersion 0 when unseen and returns
	// ErrUnauthorized when the group belongs to another user.
	GetByID(ctx context.Context, id, userID string) (models.ClientGroup, error)
	// Upsert never lowers the stored CVR version and returns the stored row.
	Upsert(ctx context.Context, group models.ClientGroup) (models.ClientGroup, error)
}

// Repositories gives access to every repository bound to one transaction.
type Repositories interface {
	Notes() NoteRepository
	Clients() ClientRepository
	ClientGroups() ClientGroupRepository
}

// TxFunc is the body of a transaction. It may run more than once.
type TxFunc func(ctx context.Context, repos Repositories) error

// Transactor runs a TxFunc in a serializable read-write transaction.
type Transactor interface {
	Transact(ctx context.Context, fn TxFunc) error
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
