package repository

import (
	"context"

	"tutorlink/internal/domain/booking"
	"tutorlink/internal/usecase"
	"tutorlink/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// Create inserts and reads back the joined view in one statement; a booking
// that was persisted is always reported to the caller as a success.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (*readmodel.BookingView, error) {
	query := `
		WITH ins AS (
			INSERT INTO bookings (id, tutor_id, student_id, date, "time", notes, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, tutor_id, student_id, date, "time", notes, status, created_at, updated_at
		)
		SELECT ins.id, ins.tutor_id, t.name, ins.student_id, u.full_name,
		       ins.date::text, ins."time", ins.notes, ins.status::text, ins.created_at, ins.updated_at
		FROM ins
		JOIN tutors t ON t.id = ins.tutor_id
		JOIN users u ON u.id = ins.student_id
	`

	var notes *string
	if !b.Notes().IsEmpty() {
		v := b.Notes().String()
		notes = &v
	}

	var view readmodel.BookingView
	err := r.pool.QueryRow(
		ctx, query,
		b.ID(),
		b.TutorID(),
		b.StudentID(),
		b.Date().String(),
		b.Slot(),
		notes,
		b.Status().String(),
		b.CreatedAt(),
		b.UpdatedAt(),
	).Scan(
		&view.ID,
		&view.TutorID,
		&view.TutorName,
		&view.StudentID,
		&view.StudentName,
		&view.Date,
		&view.Time,
		&view.Notes,
		&view.Status,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, wrapPgErr("failed to create booking", err)
	}

	return &view, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingSnapshot, error) {
	query := `
		SELECT id, tutor_id, student_id, date::text, "time", status::text
		FROM bookings
		WHERE id = $1
	`

	var snap readmodel.BookingSnapshot
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&snap.ID,
		&snap.TutorID,
		&snap.StudentID,
		&snap.Date,
		&snap.Time,
		&snap.Status,
	)
	if err != nil {
		return nil, wrapPgErr("failed to find booking", err)
	}

	return &snap, nil
}

func (r *BookingRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingView, error) {
	query := `
		SELECT b.id, b.tutor_id, t.name, b.student_id, u.full_name,
		       b.date::text, b."time", b.notes, b.status::text, b.created_at, b.updated_at
		FROM bookings b
		JOIN tutors t ON t.id = b.tutor_id
		JOIN users u ON u.id = b.student_id
		WHERE b.id = $1
	`

	var view readmodel.BookingView
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&view.ID,
		&view.TutorID,
		&view.TutorName,
		&view.StudentID,
		&view.StudentName,
		&view.Date,
		&view.Time,
		&view.Notes,
		&view.Status,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, wrapPgErr("failed to find booking view", err)
	}

	return &view, nil
}

func (r *BookingRepository) FindActiveBySlot(ctx context.Context, tutorID uuid.UUID, date, slot string) (*readmodel.BookingSnapshot, error) {
	query := `
		SELECT id, tutor_id, student_id, date::text, "time", status::text
		FROM bookings
		WHERE tutor_id = $1 AND date = $2 AND "time" = $3 AND status <> 'canceled'
	`

	var snap readmodel.BookingSnapshot
	err := r.pool.QueryRow(ctx, query, tutorID, date, slot).Scan(
		&snap.ID,
		&snap.TutorID,
		&snap.StudentID,
		&snap.Date,
		&snap.Time,
		&snap.Status,
	)
	if err != nil {
		return nil, wrapPgErr("failed to find active booking for slot", err)
	}

	return &snap, nil
}

func (r *BookingRepository) BookedSlots(ctx context.Context, tutorID uuid.UUID, date string) ([]string, error) {
	query := `
		SELECT "time"
		FROM bookings
		WHERE tutor_id = $1 AND date = $2 AND status <> 'canceled'
	`

	rows, err := r.pool.Query(ctx, query, tutorID, date)
	if err != nil {
		return nil, wrapPgErr("failed to query booked slots", err)
	}
	defer rows.Close()

	var slots []string
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, wrapPgErr("failed to scan booked slot", err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to read booked slots", err)
	}

	return slots, nil
}

func (r *BookingRepository) SetCanceled(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE bookings
		SET status = 'canceled', updated_at = now()
		WHERE id = $1 AND status <> 'canceled'
	`

	// Zero rows affected means another caller canceled first, which is fine.
	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return wrapPgErr("failed to cancel booking", err)
	}

	return nil
}

func (r *BookingRepository) List(ctx context.Context, filter usecase.BookingFilter) ([]*readmodel.BookingListItem, error) {
	query := `
		SELECT b.id, b.tutor_id, t.name, b.student_id, b.date::text, b."time", b.status::text, b.created_at
		FROM bookings b
		JOIN tutors t ON t.id = b.tutor_id
		WHERE ($1::uuid IS NULL OR b.student_id = $1)
		  AND ($2::uuid IS NULL OR b.tutor_id = $2)
		ORDER BY b.date, b."time"
	`

	rows, err := r.pool.Query(ctx, query, filter.StudentID, filter.TutorID)
	if err != nil {
		return nil, wrapPgErr("failed to list bookings", err)
	}
	defer rows.Close()

	var items []*readmodel.BookingListItem
	for rows.Next() {
		var item readmodel.BookingListItem
		err := rows.Scan(
			&item.ID,
			&item.TutorID,
			&item.TutorName,
			&item.StudentID,
			&item.Date,
			&item.Time,
			&item.Status,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, wrapPgErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to read booking rows", err)
	}

	return items, nil
}
