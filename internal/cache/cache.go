// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/cvr"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

const defaultTTL = 24 * time.Hour

// entryKey addresses one CVR generation of a client group.
type entryKey struct {
	ClientGroupID string
	Version       int64
}

// String renders the key as "cvr/<clientGroupID>/<version>".
func (k entryKey) String() string {
	return "cvr/" + k.ClientGroupID + "/" + strconv.FormatInt(k.Version, 10)
}

// Cache implements CVRCache on top of a byte-level backend.
type Cache struct {
	store entryStore
	ttl   time.Duration
}

func newCache(store entryStore, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{store: store, ttl: ttl}
}

// New opens the backend selected by cfg.Driver.
func New(ctx context.Context, cfg config.Cache, log *logger.Logger) (*Cache, error) {
	switch cfg.Driver {
	case config.CacheDriverMemory, "":
		log.Info().Str("func", "cache.New").Msg("using in-memory cvr cache")
		return newCache(NewMemoryStore(), cfg.TTL), nil
	case config.CacheDriverRedis:
		store, err := NewRedisStore(ctx, cfg)
		if err != nil {
			log.Err(err).Str("func", "cache.New").Str("address", cfg.RedisAddress).Msg("error connecting redis")
			return nil, err
		}
		log.Info().Str("func", "cache.New").Str("address", cfg.RedisAddress).Msg("using redis cvr cache")
		return newCache(store, cfg.TTL), nil
	case config.CacheDriverSQLite:
		store, err := NewSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			log.Err(err).Str("func", "cache.New").Str("path", cfg.SQLitePath).Msg("error opening sqlite cache")
			return nil, err
		}
		log.Info().Str("func", "cache.New").Str("path", cfg.SQLitePath).Msg("using sqlite cvr cache")
		return newCache(store, cfg.TTL), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
}

func (c *Cache) GetBaseCVR(ctx context.Context, clientGroupID string, cookie *models.Cookie) (cvr.CVR, *cvr.CVR) {
	if cookie == nil || cookie.ClientGroupID != clientGroupID {
		return cvr.Empty(), nil
	}

	log := logger.FromContext(ctx)
	key := entryKey{ClientGroupID: clientGroupID, Version: cookie.Order}

	payload, ok, err := c.store.load(ctx, key)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "Cache.GetBaseCVR").
			Str("key", key.String()).
			Msg("cvr cache read failed, falling back to full resync")
		return cvr.Empty(), nil
	}
	if !ok {
		log.Debug().Str("func", "Cache.GetBaseCVR").Str("key", key.String()).Msg("cvr cache miss")
		return cvr.Empty(), nil
	}

	previous, err := decodeCVR(payload)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "Cache.GetBaseCVR").
			Str("key", key.String()).
			Msg("corrupt cvr cache entry, falling back to full resync")
		return cvr.Empty(), nil
	}

	return previous, &previous
}

func (c *Cache) SetCVR(ctx context.Context, clientGroupID string, version int64, value cvr.CVR) error {
	payload, err := encodeCVR(value)
	if err != nil {
		return err
	}

	key := entryKey{ClientGroupID: clientGroupID, Version: version}
	if err = c.store.save(ctx, key, payload, c.ttl); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWritingEntry, key, err)
	}
	return nil
}

func (c *Cache) DelCVR(ctx context.Context, clientGroupID string, version int64) error {
	key := entryKey{ClientGroupID: clientGroupID, Version: version}
	if err := c.store.remove(ctx, key); err != nil {
		return fmt.Errorf("%w %s: %w", ErrDeletingEntry, key, err)
	}
	return nil
}

// Close releases the backend.
func (c *Cache) Close() error {
	return c.store.Close()
}

type purger interface {
	Purge(ctx context.Context) (int64, error)
}

// Purge drops expired entries on backends that do not expire them on their
// own. It reports the number removed.
func (c *Cache) Purge(ctx context.Context) (int64, error) {
	p, ok := c.store.(purger)
	if !ok {
		return 0, nil
	}
	return p.Purge(ctx)
}
