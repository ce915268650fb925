// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/sethvargo/go-retry"
)

const (
	defaultTxMaxAttempts = 10
	defaultTxBaseDelay   = 10 * time.Millisecond
	maxTxRetryDelay      = time.Second
)

// transactor runs transaction bodies with serialization-failure retries.
type transactor struct {
	db          *DB
	maxAttempts int
	baseDelay   time.Duration
}

// NewTransactor returns a Transactor over db. Zero settings fall back to 10
// attempts starting at 10ms.
func NewTransactor(db *DB, cfg config.Sync) Transactor {
	t := &transactor{
		db:          db,
		maxAttempts: cfg.TxMaxAttempts,
		baseDelay:   cfg.TxRetryBaseDelay,
	}
	if t.maxAttempts <= 0 {
		t.maxAttempts = defaultTxMaxAttempts
	}
	if t.baseDelay <= 0 {
		t.baseDelay = defaultTxBaseDelay
	}
	return t
}

// Transact runs fn in a serializable read-write transaction. Serialization
// failures and deadlocks restart fn from scratch with exponential backoff;
// when every attempt failed the result wraps ErrConflict. Other postgres
// errors are mapped by the classifier and errors returned by fn itself are
// passed through.
func (t *transactor) Transact(ctx context.Context, fn TxFunc) error {
	log := logger.FromContext(ctx)

	backoff := retry.NewExponential(t.baseDelay)
	backoff = retry.WithCappedDuration(maxTxRetryDelay, backoff)
	backoff = retry.WithMaxRetries(uint64(t.maxAttempts-1), backoff)

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		err := t.runOnce(ctx, fn)
		if err == nil {
			return nil
		}

		if t.db.errorClassificator.Classify(err) == Retryable {
			log.Warn().Err(err).
				Str("func", "transactor.Transact").
				Int("attempt", attempt).
				Int("max_attempts", t.maxAttempts).
				Msg("transaction conflict, retrying")
			return retry.RetryableError(err)
		}

		return err
	})
	if err == nil {
		return nil
	}

	if t.db.errorClassificator.Classify(err) == Retryable {
		log.Err(err).
			Str("func", "transactor.Transact").
			Int("attempts", attempt).
			Msg("transaction retries exhausted")
		return fmt.Errorf("%w after %d attempts: %w", ErrConflict, attempt, err)
	}

	return t.db.errorClassificator.Map(err)
}

func (t *transactor) runOnce(ctx context.Context, fn TxFunc) (err error) {
	tx, err := t.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.FromContext(ctx).Err(rbErr).
				Str("func", "transactor.runOnce").
				Msg("error rolling back transaction")
		}
	}()

	if err = fn(ctx, newRepositories(tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
