package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

func (r *NotificationRepository) Create(ctx context.Context, recipientID uuid.UUID, message, kind, link string) error {
	query := `
		INSERT INTO notifications (recipient_id, message, type, link)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := r.pool.Exec(ctx, query, recipientID, message, kind, link); err != nil {
		return wrapPgErr("failed to create notification", err)
	}

	return nil
}
