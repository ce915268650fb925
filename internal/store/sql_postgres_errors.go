package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the transaction wrapper whether a failed
// attempt is worth repeating.
type ErrorClassification int

const (
	// NonRetryable is the default for everything not listed in ClassifyPgError.
	NonRetryable ErrorClassification = iota

	// Retryable marks serialization failures and deadlocks.
	Retryable
)

// ErrorClassificator classifies database errors and maps them to the
// package's sentinel errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	Map(err error) error
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError and delegates to
// [ClassifyPgError]. Anything else is [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError reports [Retryable] for class 40 serialization failures
// (40001) and deadlocks (40P01) only.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.SerializationFailure, // 40001
		pgerrcode.DeadlockDetected: // 40P01
		return Retryable
	}

	return NonRetryable
}

// Map converts a postgres error to the matching sentinel, keeping the
// original in the chain. Errors without a known code are returned unchanged.
//
//   - 40001, 40P01         => ErrConflict
//   - 57014, 25P03         => ErrTimeout
//   - 22P02, 22023, 22012  => ErrInvalidInput
//   - 42601, 42501, 42883  => ErrUnprocessable
//   - 23505                => ErrAlreadyExists
func (c *PostgresErrorClassifier) Map(err error) error {
	code := postgresError(err)
	if code == "" {
		return err
	}

	switch code {
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case pgerrcode.QueryCanceled, pgerrcode.IdleInTransactionSessionTimeout:
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case pgerrcode.InvalidTextRepresentation, pgerrcode.InvalidParameterValue, pgerrcode.DivisionByZero:
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case pgerrcode.SyntaxError, pgerrcode.InsufficientPrivilege, pgerrcode.UndefinedFunction:
		return fmt.Errorf("%w: %w", ErrUnprocessable, err)
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	}

	return err
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
