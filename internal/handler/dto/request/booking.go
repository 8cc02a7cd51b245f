package request

import (
	"errors"

	"tutorlink/internal/usecase"

	"github.com/google/uuid"
)

var ErrStudentMismatch = errors.New("studentId does not match the authenticated user")

type CreateBookingRequest struct {
	TutorID uuid.UUID `json:"tutorId" binding:"required"`
	Date    string    `json:"date" binding:"required"`
	Time    string    `json:"time" binding:"required"`
	Notes   *string   `json:"notes,omitempty"`
	// Older clients still send studentId; it is accepted but must name the
	// caller, the token is the authority.
	StudentID *uuid.UUID `json:"studentId,omitempty"`
}

func (r CreateBookingRequest) ToParams(callerID uuid.UUID) (usecase.CreateBookingParams, error) {
	if r.StudentID != nil && *r.StudentID != callerID {
		return usecase.CreateBookingParams{}, ErrStudentMismatch
	}

	return usecase.CreateBookingParams{
		StudentID: callerID,
		TutorID:   r.TutorID,
		Date:      r.Date,
		Time:      r.Time,
		Notes:     r.Notes,
	}, nil
}

type ListBookingsQuery struct {
	StudentID *uuid.UUID `form:"studentId"`
	TutorID   *uuid.UUID `form:"tutorId"`
}

func (q ListBookingsQuery) ToFilter() usecase.BookingFilter {
	return usecase.BookingFilter{
		StudentID: q.StudentID,
		TutorID:   q.TutorID,
	}
}
