//go:build unit

package repository

import (
	"errors"
	"fmt"
	"testing"

	"tutorlink/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPgErr(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:       "no rows maps to not found",
			err:        pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "wrapped no rows maps to not found",
			err:        fmt.Errorf("scan: %w", pgx.ErrNoRows),
			expectKind: infra.KindNotFound,
		},
		{
			name:       "unique violation maps to duplicate key",
			err:        &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "foreign key violation maps to its own kind",
			err:        &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:       "check violation falls through to db failure",
			err:        &pgconn.PgError{Code: "23514", Message: "violates check constraint"},
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "plain driver error maps to db failure",
			err:        errors.New("connection refused"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := wrapPgErr("query failed", tc.err)
			require.Error(t, wrapped)

			assert.True(t, infra.IsKind(wrapped, tc.expectKind),
				"expected kind %s, got %v", tc.expectKind, wrapped)
			assert.ErrorIs(t, wrapped, tc.err, "original error must stay reachable")
		})
	}
}

func TestWrapPgErrKindsAreExclusive(t *testing.T) {
	wrapped := wrapPgErr("insert failed", &pgconn.PgError{Code: "23505"})

	assert.True(t, infra.IsKind(wrapped, infra.KindDuplicateKey))
	assert.False(t, infra.IsKind(wrapped, infra.KindNotFound))
	assert.False(t, infra.IsKind(wrapped, infra.KindDBFailure))
}
