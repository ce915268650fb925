//go:generate mockgen -source=interfaces.go -destination=../mock/cvr_cache_mock.go -package=mock -exclude_interfaces=entryStore

package cache

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/cvr"
	"github.com/MKhiriev/go-note-sync/models"
)

// CVRCache is the version cache used by the pull handler.
type CVRCache interface {
	// GetBaseCVR returns the CVR recorded for the cookie. previous is nil on
	// a nil cookie, a cookie of another client group, a miss or a read
	// failure; base is then an empty CVR.
	GetBaseCVR(ctx context.Context, clientGroupID string, cookie *models.Cookie) (base cvr.CVR, previous *cvr.CVR)
	// SetCVR stores c under (clientGroupID, version), replacing any entry.
	SetCVR(ctx context.Context, clientGroupID string, version int64, c cvr.CVR) error
	// DelCVR removes the entry. A missing entry is not an error.
	DelCVR(ctx context.Context, clientGroupID string, version int64) error
}

// entryStore is a byte-level backend of Cache.
type entryStore interface {
	load(ctx context.Context, key entryKey) ([]byte, bool, error)
	save(ctx context.Context, key entryKey, payload []byte, ttl time.Duration) error
	remove(ctx context.Context, key entryKey) error
	Close() error
}
