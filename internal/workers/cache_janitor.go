// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

const defaultPurgeInterval = time.Minute

// CacheJanitor purges expired CVR cache entries on a ticker.
type CacheJanitor struct {
	purger   Purger
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCacheJanitor creates an idle janitor. A non-positive interval defaults
// to one minute.
func NewCacheJanitor(purger Purger, interval time.Duration, logger *logger.Logger) *CacheJanitor {
	if interval <= 0 {
		interval = defaultPurgeInterval
	}
	return &CacheJanitor{
		purger:   purger,
		interval: interval,
		logger:   logger,
	}
}

// Run stops any previous loop and starts a new one.
func (j *CacheJanitor) Run() {
	j.Stop()

	j.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				j.purge(ctx)
			}
		}
	}()
}

func (j *CacheJanitor) purge(ctx context.Context) {
	removed, err := j.purger.Purge(ctx)
	if err != nil {
		j.logger.Err(err).Str("func", "CacheJanitor.purge").Msg("error purging expired cache entries")
		return
	}
	if removed > 0 {
		j.logger.Debug().Int64("removed", removed).Msg("purged expired cache entries")
	}
}

// Stop cancels the loop and waits for it to exit. It is a no-op when the
// janitor is idle.
func (j *CacheJanitor) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
