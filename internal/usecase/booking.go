package usecase

import (
	"context"
	"errors"
	"log/slog"

	"tutorlink/internal/domain/booking"
	"tutorlink/internal/domain/tutor"
	"tutorlink/internal/domain/user"
	"tutorlink/internal/infra"
	"tutorlink/internal/pkg/clock"
	"tutorlink/internal/pkg/config"
	"tutorlink/internal/pkg/errs"
	"tutorlink/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrTutorNotFound      = errors.New("tutor not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidSlot        = errors.New("time is not a bookable slot")
	ErrInvalidBooking     = errors.New("invalid booking request")
	ErrSlotConflict       = errors.New("slot already booked")
	ErrDuplicateBooking   = errors.New("student already booked this slot")
	ErrBookingForbidden   = errors.New("not allowed to act on this booking")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// BookingRepository is the persistence collaborator. Create must be backed by
// a uniqueness constraint on the active (tutor, date, time) key and return
// KindDuplicateKey when it trips; that constraint, not the usecase pre-check,
// is what closes the check-then-insert race.
type BookingRepository interface {
	// Create inserts the booking and returns its view in the same statement,
	// so a created booking is never reported as a failure by a follow-up read.
	Create(ctx context.Context, b *booking.Booking) (*readmodel.BookingView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingSnapshot, error)
	FindViewByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingView, error)
	// FindActiveBySlot returns the non-canceled booking holding the slot, or
	// KindNotFound when the slot is free.
	FindActiveBySlot(ctx context.Context, tutorID uuid.UUID, date, slot string) (*readmodel.BookingSnapshot, error)
	// BookedSlots returns the non-canceled time labels for (tutor, date) in a
	// single query, so the availability view is one consistent snapshot.
	BookedSlots(ctx context.Context, tutorID uuid.UUID, date string) ([]string, error)
	SetCanceled(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter BookingFilter) ([]*readmodel.BookingListItem, error)
}

type TutorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*tutor.Tutor, error)
}

// NotificationRepository persists fire-and-forget notification rows.
type NotificationRepository interface {
	Create(ctx context.Context, recipientID uuid.UUID, message, kind, link string) error
}

type CreateBookingParams struct {
	StudentID uuid.UUID
	TutorID   uuid.UUID
	Date      string
	Time      string
	Notes     *string
}

type BookingFilter struct {
	StudentID *uuid.UUID
	TutorID   *uuid.UUID
}

func (f BookingFilter) IsEmpty() bool {
	return f.StudentID == nil && f.TutorID == nil
}

type BookingUseCase interface {
	QueryAvailability(ctx context.Context, tutorID uuid.UUID, date string) ([]string, error)
	CreateBooking(ctx context.Context, params CreateBookingParams) (*readmodel.BookingView, error)
	GetBooking(ctx context.Context, requesterID uuid.UUID, requesterRole user.Role, id uuid.UUID) (*readmodel.BookingView, error)
	CancelBooking(ctx context.Context, requesterID uuid.UUID, requesterRole user.Role, id uuid.UUID) error
	ListBookings(ctx context.Context, filter BookingFilter) ([]*readmodel.BookingListItem, error)
}

type bookingUseCaseImpl struct {
	bookingRepo      BookingRepository
	tutorRepo        TutorRepository
	notificationRepo NotificationRepository
	catalog          booking.SlotCatalog
	policy           config.BookingConfig
	clock            clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	tutorRepo TutorRepository,
	notificationRepo NotificationRepository,
	catalog booking.SlotCatalog,
	policy config.BookingConfig,
	clk clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo:      bookingRepo,
		tutorRepo:        tutorRepo,
		notificationRepo: notificationRepo,
		catalog:          catalog,
		policy:           policy,
		clock:            clk,
	}
}

func (u *bookingUseCaseImpl) QueryAvailability(ctx context.Context, tutorID uuid.UUID, date string) ([]string, error) {
	day, err := booking.NewDate(date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if _, err := u.requireTutor(ctx, tutorID); err != nil {
		return nil, err
	}

	booked, err := u.bookingRepo.BookedSlots(ctx, tutorID, day.String())
	if err != nil {
		return nil, u.storageErr(err, "failed to load booked slots")
	}

	return u.catalog.Available(booked), nil
}

func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*readmodel.BookingView, error) {
	day, err := booking.NewDate(params.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !u.catalog.Contains(params.Time) {
		return nil, ErrInvalidSlot
	}

	notes := booking.Note{}
	if params.Notes != nil {
		if notes, err = booking.NewNote(*params.Notes); err != nil {
			return nil, errs.Mark(err, ErrInvalidBooking)
		}
	}

	t, err := u.requireTutor(ctx, params.TutorID)
	if err != nil {
		return nil, err
	}

	// Fast pre-check for a friendly error; correctness still rests on the
	// partial unique index checked again at insert time.
	if existing, err := u.bookingRepo.FindActiveBySlot(ctx, params.TutorID, day.String(), params.Time); err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, u.storageErr(err, "failed to check slot")
		}
	} else {
		if existing.StudentID == params.StudentID {
			return nil, ErrDuplicateBooking
		}
		return nil, ErrSlotConflict
	}

	entity, err := booking.NewBooking(
		u.catalog,
		params.TutorID,
		params.StudentID,
		day,
		params.Time,
		notes,
		u.policy.AutoConfirm,
		u.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBooking)
	}

	view, err := u.bookingRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Lost the race for the slot.
			return nil, ErrSlotConflict
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrInvalidBooking
		}
		return nil, u.storageErr(err, "failed to create booking")
	}

	u.notifyTutor(ctx, t.ID(), entity.ID())

	return view, nil
}

// notifyTutor is fire-and-forget: a notification failure must never undo or
// fail the booking it announces.
func (u *bookingUseCaseImpl) notifyTutor(ctx context.Context, tutorID, bookingID uuid.UUID) {
	err := u.notificationRepo.Create(ctx, tutorID, "You have a new booking", "booking", "/bookings/"+bookingID.String())
	if err != nil {
		slog.Warn("failed to create booking notification",
			"tutor_id", tutorID.String(),
			"booking_id", bookingID.String(),
			"error", err.Error())
	}
}

func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, requesterID uuid.UUID, requesterRole user.Role, id uuid.UUID) (*readmodel.BookingView, error) {
	view, err := u.bookingRepo.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, u.storageErr(err, "failed to find booking")
	}

	if requesterRole != user.RoleAdmin && view.StudentID != requesterID && view.TutorID != requesterID {
		return nil, ErrBookingForbidden
	}
	return view, nil
}

func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, requesterID uuid.UUID, requesterRole user.Role, id uuid.UUID) error {
	snap, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return u.storageErr(err, "failed to find booking")
	}

	if !u.mayCancel(requesterID, requesterRole, snap) {
		return ErrBookingForbidden
	}

	// Idempotent: re-cancelling is a success, not an error.
	if snap.Status == booking.StatusCanceled.String() {
		return nil
	}

	if err := u.bookingRepo.SetCanceled(ctx, id); err != nil {
		return u.storageErr(err, "failed to cancel booking")
	}
	return nil
}

func (u *bookingUseCaseImpl) mayCancel(requesterID uuid.UUID, role user.Role, snap *readmodel.BookingSnapshot) bool {
	if role == user.RoleAdmin {
		return true
	}
	if snap.StudentID == requesterID {
		return true
	}
	if u.policy.CancelPolicy == "student_tutor_admin" && snap.TutorID == requesterID && role == user.RoleTutor {
		return true
	}
	return false
}

func (u *bookingUseCaseImpl) ListBookings(ctx context.Context, filter BookingFilter) ([]*readmodel.BookingListItem, error) {
	items, err := u.bookingRepo.List(ctx, filter)
	if err != nil {
		return nil, u.storageErr(err, "failed to list bookings")
	}
	return items, nil
}

func (u *bookingUseCaseImpl) requireTutor(ctx context.Context, tutorID uuid.UUID) (*tutor.Tutor, error) {
	t, err := u.tutorRepo.FindByID(ctx, tutorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTutorNotFound
		}
		return nil, u.storageErr(err, "failed to find tutor")
	}
	if !t.IsActive() {
		return nil, ErrTutorNotFound
	}
	return t, nil
}

func (u *bookingUseCaseImpl) storageErr(err error, msg string) error {
	return errs.Mark(errs.Wrap(err, msg), ErrStorageUnavailable)
}
