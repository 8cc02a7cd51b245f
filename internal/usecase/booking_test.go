//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tutorlink/internal/domain/booking"
	"tutorlink/internal/domain/user"
	"tutorlink/internal/infra"
	"tutorlink/internal/pkg/clock"
	"tutorlink/internal/pkg/config"
	"tutorlink/internal/usecase"
	"tutorlink/internal/usecase/readmodel"
	"tutorlink/tests/common/builder"
	usecasemock "tutorlink/tests/mock/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingUseCaseTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	bookingRepo      *usecasemock.MockBookingRepository
	tutorRepo        *usecasemock.MockTutorRepository
	notificationRepo *usecasemock.MockNotificationRepository
	clock            *clock.FixedClock
	policy           config.BookingConfig
}

func TestBookingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(BookingUseCaseTestSuite))
}

func (s *BookingUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.bookingRepo = usecasemock.NewMockBookingRepository(s.ctrl)
	s.tutorRepo = usecasemock.NewMockTutorRepository(s.ctrl)
	s.notificationRepo = usecasemock.NewMockNotificationRepository(s.ctrl)
	s.clock = clock.NewFixedClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	s.policy = config.BookingConfig{
		Slots:        builder.DefaultSlots,
		AutoConfirm:  false,
		CancelPolicy: "student_tutor_admin",
	}
}

func (s *BookingUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BookingUseCaseTestSuite) newUseCase() usecase.BookingUseCase {
	catalog, err := booking.NewSlotCatalog(s.policy.Slots)
	require.NoError(s.T(), err)
	return usecase.NewBookingUseCase(s.bookingRepo, s.tutorRepo, s.notificationRepo, catalog, s.policy, s.clock)
}

func notFoundErr() error {
	return infra.WrapRepoErr("not found", errors.New("no rows"), infra.KindNotFound)
}

func dbFailureErr() error {
	return infra.WrapRepoErr("db down", errors.New("connection refused"))
}

func (s *BookingUseCaseTestSuite) TestQueryAvailability() {
	b := builder.NewBookingBuilder()

	s.Run("invalid date", func() {
		uc := s.newUseCase()
		_, err := uc.QueryAvailability(context.Background(), b.TutorID, "2026-13-01")
		assert.ErrorIs(s.T(), err, usecase.ErrInvalidDate)
	})

	s.Run("unknown tutor", func() {
		s.tutorRepo.EXPECT().FindByID(gomock.Any(), b.TutorID).Return(nil, notFoundErr())

		uc := s.newUseCase()
		_, err := uc.QueryAvailability(context.Background(), b.TutorID, b.Date)
		assert.ErrorIs(s.T(), err, usecase.ErrTutorNotFound)
	})

	s.Run("inactive tutor treated as missing", func() {
		s.tutorRepo.EXPECT().FindByID(gomock.Any(), b.TutorID).Return(b.BuildInactiveTutor(), nil)

		uc := s.newUseCase()
		_, err := uc.QueryAvailability(context.Background(), b.TutorID, b.Date)
		assert.ErrorIs(s.T(), err, usecase.ErrTutorNotFound)
	})

	s.Run("returns open slots in catalog order", func() {
		s.tutorRepo.EXPECT().FindByID(gomock.Any(), b.TutorID).Return(b.BuildTutor(), nil)
		s.bookingRepo.EXPECT().BookedSlots(gomock.Any(), b.TutorID, b.Date).
			Return([]string{"10:00", "14:00"}, nil)

		uc := s.newUseCase()
		slots, err := uc.QueryAvailability(context.Background(), b.TutorID, b.Date)
		require.NoError(s.T(), err)

		want := []string{"09:00", "11:00", "12:00", "13:00", "15:00", "16:00", "17:00"}
		assert.Empty(s.T(), cmp.Diff(want, slots))
	})

	s.Run("storage failure surfaces as unavailable", func() {
		s.tutorRepo.EXPECT().FindByID(gomock.Any(), b.TutorID).Return(b.BuildTutor(), nil)
		s.bookingRepo.EXPECT().BookedSlots(gomock.Any(), b.TutorID, b.Date).Return(nil, dbFailureErr())

		uc := s.newUseCase()
		_, err := uc.QueryAvailability(context.Background(), b.TutorID, b.Date)
		assert.ErrorIs(s.T(), err, usecase.ErrStorageUnavailable)
	})
}

func (s *BookingUseCaseTestSuite) TestCreateBooking() {
	b := builder.NewBookingBuilder()
	params := usecase.CreateBookingParams{
		StudentID: b.StudentID,
		TutorID:   b.TutorID,
		Date:      b.Date,
		Time:      b.Time,
	}

	s.Run("invalid date", func() {
		uc := s.newUseCase()
		p := params
		p.Date = "not-a-date"
		_, err := uc.CreateBooking(context.Background(), p)
		assert.ErrorIs(s.T(), err, usecase.ErrInvalidDate)
	})

	s.Run("slot outside catalog", func() {
		uc := s.newUseCase()
		p := params
		p.Time = "08:30"
		_, err := uc.CreateBooking(context.Background(), p)
		assert.ErrorIs(s.T(), err, usecase.ErrInvalidSlot)
	})

	s.Run("unknown tutor", func() {
		s.tutorRepo.EXPECT().FindByID(gomock.Any(), b.TutorID).Return(nil, notFoundErr())

		uc := s.newUseCase()
		_, err := uc.CreateBooking(context.Background(), params)
		assert.ErrorIs(s.T(), err, usecase.ErrTutorNotFound)
	})

	s.Run("same student already holds the slot", func() {
		s.tutorRepo.EXPECT().FindByID(gomock.Any(), b.TutorID).Return(b.BuildTutor(), nil)
		existing := b.BuildSnapshot()
		s.bookingRepo.EXPECT().FindActiveBySlot(gomock.Any(), b.TutorID, b.Date, b.Time).
			Return(existing, nil)

		uc := s.newUseCase()
		_, err := uc.CreateBooking(context.Background(), params)
		assert.ErrorIs(s.T(), err, usecase.ErrDuplicateBooking)
	})

	s.Run("another student holds the slot", func() {
		s.tutorRepo.EXPECT().FindByID(gomock.Any(), b.TutorID).Return(b.BuildTutor(), nil)
		existing := b.BuildSnapshot()
		existing.StudentID = uuid.New()
		s.bookingRepo.EXPECT().FindActiveBySlot(gomock.Any(), b.TutorID, b.Date, b.Time).
			Return(existing, nil)

		uc := s.newUseCase()
		_, err := uc.CreateBooking(context.Background(), params)
		assert.ErrorIs(s.T(), err, usecase.ErrSlotConflict)
	})

	s.Run("insert race maps duplicate key to conflict", func() {
		s.tutorRepo.EXPECT().FindByID(gomock.Any(), b.TutorID).Return(b.BuildTutor(), nil)
		s.bookingRepo.EXPECT().FindActiveBySlot(gomock.Any(), b.TutorID, b.Date, b.Time).
			Return(nil, notFoundErr())
		s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("duplicate", errors.New("23505"), infra.KindDuplicateKey))

		uc := s.newUseCase()
		_, err := uc.CreateBooking(context.Background(), params)
		assert.ErrorIs(s.T(), err, usecase.ErrSlotConflict)
	})

	s.Run("success notifies tutor and returns the inserted view", func() {
		view := b.BuildView()
		s.tutorRepo.EXPECT().FindByID(gomock.Any(), b.TutorID).Return(b.BuildTutor(), nil)
		s.bookingRepo.EXPECT().FindActiveBySlot(gomock.Any(), b.TutorID, b.Date, b.Time).
			Return(nil, notFoundErr())
		s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, created *booking.Booking) (*readmodel.BookingView, error) {
				assert.Equal(s.T(), booking.StatusPending, created.Status())
				assert.Equal(s.T(), s.clock.Now(), created.CreatedAt())
				return view, nil
			})
		s.notificationRepo.EXPECT().Create(gomock.Any(), b.TutorID, gomock.Any(), "booking", gomock.Any()).
			Return(nil)

		uc := s.newUseCase()
		got, err := uc.CreateBooking(context.Background(), params)
		require.NoError(s.T(), err)
		assert.Same(s.T(), view, got)
	})

	s.Run("notification failure never fails the booking", func() {
		view := b.BuildView()
		s.tutorRepo.EXPECT().FindByID(gomock.Any(), b.TutorID).Return(b.BuildTutor(), nil)
		s.bookingRepo.EXPECT().FindActiveBySlot(gomock.Any(), b.TutorID, b.Date, b.Time).
			Return(nil, notFoundErr())
		s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(view, nil)
		s.notificationRepo.EXPECT().Create(gomock.Any(), b.TutorID, gomock.Any(), "booking", gomock.Any()).
			Return(dbFailureErr())

		uc := s.newUseCase()
		got, err := uc.CreateBooking(context.Background(), params)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), view, got)
	})

	s.Run("auto confirm policy creates confirmed bookings", func() {
		s.policy.AutoConfirm = true
		defer func() { s.policy.AutoConfirm = false }()

		s.tutorRepo.EXPECT().FindByID(gomock.Any(), b.TutorID).Return(b.BuildTutor(), nil)
		s.bookingRepo.EXPECT().FindActiveBySlot(gomock.Any(), b.TutorID, b.Date, b.Time).
			Return(nil, notFoundErr())
		s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, created *booking.Booking) (*readmodel.BookingView, error) {
				assert.Equal(s.T(), booking.StatusConfirmed, created.Status())
				return b.BuildView(), nil
			})
		s.notificationRepo.EXPECT().Create(gomock.Any(), b.TutorID, gomock.Any(), "booking", gomock.Any()).
			Return(nil)

		uc := s.newUseCase()
		_, err := uc.CreateBooking(context.Background(), params)
		require.NoError(s.T(), err)
	})

	s.Run("storage failure on pre-check", func() {
		s.tutorRepo.EXPECT().FindByID(gomock.Any(), b.TutorID).Return(b.BuildTutor(), nil)
		s.bookingRepo.EXPECT().FindActiveBySlot(gomock.Any(), b.TutorID, b.Date, b.Time).
			Return(nil, dbFailureErr())

		uc := s.newUseCase()
		_, err := uc.CreateBooking(context.Background(), params)
		assert.ErrorIs(s.T(), err, usecase.ErrStorageUnavailable)
	})
}

func (s *BookingUseCaseTestSuite) TestCancelBooking() {
	b := builder.NewBookingBuilder()
	snap := b.BuildSnapshot()

	s.Run("unknown booking", func() {
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(nil, notFoundErr())

		uc := s.newUseCase()
		err := uc.CancelBooking(context.Background(), b.StudentID, user.RoleStudent, snap.ID)
		assert.ErrorIs(s.T(), err, usecase.ErrBookingNotFound)
	})

	s.Run("owning student may cancel", func() {
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.bookingRepo.EXPECT().SetCanceled(gomock.Any(), snap.ID).Return(nil)

		uc := s.newUseCase()
		err := uc.CancelBooking(context.Background(), b.StudentID, user.RoleStudent, snap.ID)
		assert.NoError(s.T(), err)
	})

	s.Run("booked tutor may cancel under default policy", func() {
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.bookingRepo.EXPECT().SetCanceled(gomock.Any(), snap.ID).Return(nil)

		uc := s.newUseCase()
		err := uc.CancelBooking(context.Background(), b.TutorID, user.RoleTutor, snap.ID)
		assert.NoError(s.T(), err)
	})

	s.Run("tutor may not cancel under student_only policy", func() {
		s.policy.CancelPolicy = "student_only"
		defer func() { s.policy.CancelPolicy = "student_tutor_admin" }()

		s.bookingRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)

		uc := s.newUseCase()
		err := uc.CancelBooking(context.Background(), b.TutorID, user.RoleTutor, snap.ID)
		assert.ErrorIs(s.T(), err, usecase.ErrBookingForbidden)
	})

	s.Run("admin may always cancel", func() {
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.bookingRepo.EXPECT().SetCanceled(gomock.Any(), snap.ID).Return(nil)

		uc := s.newUseCase()
		err := uc.CancelBooking(context.Background(), uuid.New(), user.RoleAdmin, snap.ID)
		assert.NoError(s.T(), err)
	})

	s.Run("unrelated student is forbidden", func() {
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)

		uc := s.newUseCase()
		err := uc.CancelBooking(context.Background(), uuid.New(), user.RoleStudent, snap.ID)
		assert.ErrorIs(s.T(), err, usecase.ErrBookingForbidden)
	})

	s.Run("re-cancel is a no-op success", func() {
		canceled := *snap
		canceled.Status = booking.StatusCanceled.String()
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(&canceled, nil)

		uc := s.newUseCase()
		err := uc.CancelBooking(context.Background(), b.StudentID, user.RoleStudent, snap.ID)
		assert.NoError(s.T(), err)
	})
}

func (s *BookingUseCaseTestSuite) TestGetBooking() {
	b := builder.NewBookingBuilder()
	view := b.BuildView()

	s.Run("owner sees the booking", func() {
		s.bookingRepo.EXPECT().FindViewByID(gomock.Any(), view.ID).Return(view, nil)

		uc := s.newUseCase()
		got, err := uc.GetBooking(context.Background(), b.StudentID, user.RoleStudent, view.ID)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), view, got)
	})

	s.Run("stranger is forbidden", func() {
		s.bookingRepo.EXPECT().FindViewByID(gomock.Any(), view.ID).Return(view, nil)

		uc := s.newUseCase()
		_, err := uc.GetBooking(context.Background(), uuid.New(), user.RoleStudent, view.ID)
		assert.ErrorIs(s.T(), err, usecase.ErrBookingForbidden)
	})

	s.Run("unknown booking", func() {
		s.bookingRepo.EXPECT().FindViewByID(gomock.Any(), view.ID).Return(nil, notFoundErr())

		uc := s.newUseCase()
		_, err := uc.GetBooking(context.Background(), b.StudentID, user.RoleStudent, view.ID)
		assert.ErrorIs(s.T(), err, usecase.ErrBookingNotFound)
	})
}

func (s *BookingUseCaseTestSuite) TestListBookings() {
	b := builder.NewBookingBuilder()

	s.Run("passes filter through", func() {
		items := []*readmodel.BookingListItem{b.BuildListItem()}
		filter := usecase.BookingFilter{StudentID: &b.StudentID}
		s.bookingRepo.EXPECT().List(gomock.Any(), filter).Return(items, nil)

		uc := s.newUseCase()
		got, err := uc.ListBookings(context.Background(), filter)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), items, got)
	})

	s.Run("storage failure", func() {
		s.bookingRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, dbFailureErr())

		uc := s.newUseCase()
		_, err := uc.ListBookings(context.Background(), usecase.BookingFilter{})
		assert.ErrorIs(s.T(), err, usecase.ErrStorageUnavailable)
	})
}
