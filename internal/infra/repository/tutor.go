package repository

import (
	"context"

	"tutorlink/internal/domain/tutor"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TutorRepository struct {
	pool *pgxpool.Pool
}

func NewTutorRepository(pool *pgxpool.Pool) *TutorRepository {
	return &TutorRepository{pool: pool}
}

func (r *TutorRepository) FindByID(ctx context.Context, id uuid.UUID) (*tutor.Tutor, error) {
	query := `
		SELECT id, name, bio, hourly_rate_cents, is_active
		FROM tutors
		WHERE id = $1
	`

	var (
		tutorID         uuid.UUID
		name            string
		bio             string
		hourlyRateCents int64
		isActive        bool
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&tutorID,
		&name,
		&bio,
		&hourlyRateCents,
		&isActive,
	)
	if err != nil {
		return nil, wrapPgErr("failed to find tutor", err)
	}

	return tutor.Reconstruct(tutorID, name, bio, hourlyRateCents, isActive), nil
}
