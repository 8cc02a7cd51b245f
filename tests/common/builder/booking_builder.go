//go:build unit || e2e

package builder

import (
	"time"

	dombooking "tutorlink/internal/domain/booking"
	"tutorlink/internal/domain/tutor"
	reqdto "tutorlink/internal/handler/dto/request"
	"tutorlink/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var DefaultSlots = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00",
}

type BookingBuilder struct {
	TutorID     uuid.UUID
	TutorName   string
	StudentID   uuid.UUID
	StudentName string
	Date        string
	Time        string
	Notes       *string
	AutoConfirm bool
	CreatedAt   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		TutorID:     uuid.New(),
		TutorName:   "Test Tutor",
		StudentID:   uuid.New(),
		StudentName: "Test Student",
		Date:        "2026-09-15",
		Time:        "10:00",
		CreatedAt:   time.Now(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	catalog, err := dombooking.NewSlotCatalog(DefaultSlots)
	if err != nil {
		return nil, err
	}

	date, err := dombooking.NewDate(b.Date)
	if err != nil {
		return nil, err
	}

	notes := dombooking.Note{}
	if b.Notes != nil {
		if notes, err = dombooking.NewNote(*b.Notes); err != nil {
			return nil, err
		}
	}

	return dombooking.NewBooking(catalog, b.TutorID, b.StudentID, date, b.Time, notes, b.AutoConfirm, b.CreatedAt)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		TutorID: b.TutorID,
		Date:    b.Date,
		Time:    b.Time,
		Notes:   b.Notes,
	}
}

func (b *BookingBuilder) BuildView() *readmodel.BookingView {
	return &readmodel.BookingView{
		ID:          uuid.New(),
		TutorID:     b.TutorID,
		TutorName:   b.TutorName,
		StudentID:   b.StudentID,
		StudentName: b.StudentName,
		Date:        b.Date,
		Time:        b.Time,
		Notes:       b.Notes,
		Status:      statusFor(b.AutoConfirm),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *readmodel.BookingListItem {
	return &readmodel.BookingListItem{
		ID:        uuid.New(),
		TutorID:   b.TutorID,
		TutorName: b.TutorName,
		StudentID: b.StudentID,
		Date:      b.Date,
		Time:      b.Time,
		Status:    statusFor(b.AutoConfirm),
		CreatedAt: b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildSnapshot() *readmodel.BookingSnapshot {
	return &readmodel.BookingSnapshot{
		ID:        uuid.New(),
		TutorID:   b.TutorID,
		StudentID: b.StudentID,
		Date:      b.Date,
		Time:      b.Time,
		Status:    statusFor(b.AutoConfirm),
	}
}

func (b *BookingBuilder) BuildTutor() *tutor.Tutor {
	return tutor.Reconstruct(b.TutorID, b.TutorName, "Experienced tutor", 4500, true)
}

func (b *BookingBuilder) BuildInactiveTutor() *tutor.Tutor {
	return tutor.Reconstruct(b.TutorID, b.TutorName, "Experienced tutor", 4500, false)
}

func (b *BookingBuilder) WithTutorID(id uuid.UUID) *BookingBuilder {
	b.TutorID = id
	return b
}

func (b *BookingBuilder) WithStudentID(id uuid.UUID) *BookingBuilder {
	b.StudentID = id
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithTime(slot string) *BookingBuilder {
	b.Time = slot
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.Notes = &notes
	return b
}

func (b *BookingBuilder) WithAutoConfirm() *BookingBuilder {
	b.AutoConfirm = true
	return b
}

func statusFor(autoConfirm bool) string {
	if autoConfirm {
		return dombooking.StatusConfirmed.String()
	}
	return dombooking.StatusPending.String()
}
