package repository

import (
	"context"

	"tutorlink/internal/domain/user"
	"tutorlink/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error) {
	query := `
		SELECT id, email, full_name, role, is_active, password_hash
		FROM users
		WHERE lower(email) = lower($1)
	`

	var rm readmodel.AuthorizedUserRM
	var passwordHash string
	err := r.pool.QueryRow(ctx, query, email.Value()).Scan(
		&rm.ID,
		&rm.Email,
		&rm.FullName,
		&rm.Role,
		&rm.IsActive,
		&passwordHash,
	)
	if err != nil {
		return nil, "", wrapPgErr("failed to find user by email", err)
	}

	return &rm, passwordHash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	query := `
		SELECT id, email, full_name, role, is_active
		FROM users
		WHERE id = $1
	`

	var rm readmodel.AuthorizedUserRM
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rm.ID,
		&rm.Email,
		&rm.FullName,
		&rm.Role,
		&rm.IsActive,
	)
	if err != nil {
		return nil, wrapPgErr("failed to find user by id", err)
	}

	return &rm, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE users
		SET last_login_at = now(), updated_at = now()
		WHERE id = $1
	`

	if _, err := r.pool.Exec(ctx, query, userID); err != nil {
		return wrapPgErr("failed to update last login", err)
	}

	return nil
}
