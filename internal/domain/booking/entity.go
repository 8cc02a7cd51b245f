package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingTutor   = errors.New("tutor id is required")
	ErrMissingStudent = errors.New("student id is required")
)

type Booking struct {
	id        uuid.UUID
	tutorID   uuid.UUID
	studentID uuid.UUID
	date      Date
	slot      string
	notes     Note
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking builds a booking for a slot that must belong to the catalog.
// The initial status is confirmed when autoConfirm is set, pending otherwise.
func NewBooking(
	catalog SlotCatalog,
	tutorID, studentID uuid.UUID,
	date Date,
	slot string,
	notes Note,
	autoConfirm bool,
	now time.Time,
) (*Booking, error) {
	if tutorID == uuid.Nil {
		return nil, ErrMissingTutor
	}
	if studentID == uuid.Nil {
		return nil, ErrMissingStudent
	}
	if !catalog.Contains(slot) {
		return nil, ErrInvalidSlot
	}

	status := StatusPending
	if autoConfirm {
		status = StatusConfirmed
	}

	return &Booking{
		id:        uuid.New(),
		tutorID:   tutorID,
		studentID: studentID,
		date:      date,
		slot:      slot,
		notes:     notes,
		status:    status,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(
	id, tutorID, studentID uuid.UUID,
	date Date,
	slot string,
	notes Note,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		tutorID:   tutorID,
		studentID: studentID,
		date:      date,
		slot:      slot,
		notes:     notes,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Cancel marks the booking canceled. Cancelling an already-canceled booking
// is a no-op; the returned bool reports whether anything changed.
func (b *Booking) Cancel(now time.Time) bool {
	if b.status == StatusCanceled {
		return false
	}
	b.status = StatusCanceled
	b.updatedAt = now
	return true
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) TutorID() uuid.UUID   { return b.tutorID }
func (b *Booking) StudentID() uuid.UUID { return b.studentID }
func (b *Booking) Date() Date           { return b.date }
func (b *Booking) Slot() string         { return b.slot }
func (b *Booking) Notes() Note          { return b.notes }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
