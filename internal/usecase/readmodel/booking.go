package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the query side)

type BookingView struct {
	ID          uuid.UUID `json:"id"`
	TutorID     uuid.UUID `json:"tutor_id"`
	TutorName   string    `json:"tutor_name"`
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Notes       *string   `json:"notes,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID        uuid.UUID `json:"id"`
	TutorID   uuid.UUID `json:"tutor_id"`
	TutorName string    `json:"tutor_name"`
	StudentID uuid.UUID `json:"student_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// BookingSnapshot is the minimal row the command side reads before acting.
type BookingSnapshot struct {
	ID        uuid.UUID
	TutorID   uuid.UUID
	StudentID uuid.UUID
	Date      string
	Time      string
	Status    string
}
