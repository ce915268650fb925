package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("x"), want: NonRetryable},
		{name: "serialization failure", err: pgError("40001"), want: Retryable},
		{name: "deadlock", err: pgError("40P01"), want: Retryable},
		{name: "wrapped serialization failure", err: fmt.Errorf("%w: %w", ErrExecutingStatement, pgError("40001")), want: Retryable},
		{name: "unique violation", err: pgError("23505"), want: NonRetryable},
		{name: "connection failure", err: pgError("08006"), want: NonRetryable},
		{name: "query canceled", err: pgError("57014"), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPostgresErrorClassifier_Map(t *testing.T) {
	c := NewPostgresErrorClassifier()

	plain := errors.New("plain")
	assert.Same(t, plain, c.Map(plain))

	unknown := pgError("XX000")
	assert.Equal(t, error(unknown), c.Map(unknown))

	mapped := c.Map(pgError("23505"))
	assert.ErrorIs(t, mapped, ErrAlreadyExists)
	assert.Equal(t, "23505", postgresError(mapped))

	assert.ErrorIs(t, c.Map(pgError("40P01")), ErrConflict)
}
