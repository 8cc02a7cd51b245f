//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"tutorlink/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultPassword is the plaintext behind every fixture user.
const DefaultPassword = "Password123!"

var (
	hashOnce       sync.Once
	passwordHash   string
	passwordHashErr error
)

func fixturePasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		passwordHash, passwordHashErr = password.Hash(DefaultPassword)
	})
	require.NoError(t, passwordHashErr)
	return passwordHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, full_name, role, is_active)
		 VALUES ($1, $2, $3, $4, $5, true)
		 ON CONFLICT (lower(email)) WHERE is_active DO NOTHING`,
		userID, email, fixturePasswordHash(t), "Fixture "+role, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE lower(email) = lower($1) AND is_active", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestTutor(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	tutorID := uuid.New()
	ctx := context.Background()

	email := strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@tutorlink.test"
	_, err := db.Exec(ctx,
		`INSERT INTO tutors (id, name, email, bio, hourly_rate_cents, is_active)
		 VALUES ($1, $2, $3, 'Fixture tutor', 4500, true)`,
		tutorID, name, email)
	require.NoError(t, err)

	return tutorID
}

func DeactivateTutor(t *testing.T, db DBLike, tutorID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE tutors SET is_active = false, updated_at = now() WHERE id = $1", tutorID)
	require.NoError(t, err)
}

func CountNotifications(t *testing.T, db DBLike, recipientID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notifications WHERE recipient_id = $1", recipientID).Scan(&n)
	require.NoError(t, err)
	return n
}

func BookingStatus(t *testing.T, db DBLike, bookingID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status::text FROM bookings WHERE id = $1", bookingID).Scan(&status)
	require.NoError(t, err)
	return status
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables so each subtest starts from a clean slate
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
