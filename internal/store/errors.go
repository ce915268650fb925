package store

import "errors"

// Domain errors. Callers match them with [errors.Is]; each maps to one error
// code at the transport boundary.
var (
	// ErrNotFound is returned when a row scoped to the caller does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized is returned when a row exists but belongs to another user.
	ErrUnauthorized = errors.New("record belongs to another user")

	// ErrAlreadyExists is returned when a create targets an id that is taken.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrConflict is returned once serialization failures or deadlocks
	// exhausted every transaction attempt.
	ErrConflict = errors.New("transaction conflict")

	// ErrTimeout is returned when postgres cancelled the statement or the
	// idle transaction.
	ErrTimeout = errors.New("database operation timed out")

	// ErrInvalidInput is returned for data exceptions such as malformed
	// text representations.
	ErrInvalidInput = errors.New("invalid input for database operation")

	// ErrUnprocessable is returned for statements postgres refused to run.
	ErrUnprocessable = errors.New("database could not process the statement")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")

	ErrExecutingQuery = errors.New("error executing sql query")

	ErrBeginningTransaction = errors.New("failed to begin transaction")

	ErrCommitingTransaction = errors.New("failed to commit transaction")

	ErrExecutingStatement = errors.New("failed to executing statement")

	ErrScanningRow = errors.New("failed to scan row")

	ErrScanningRows = errors.New("failed to scan rows")
)
