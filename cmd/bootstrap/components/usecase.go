package components

import (
	"tutorlink/internal/domain/booking"
	"tutorlink/internal/pkg/clock"
	"tutorlink/internal/pkg/config"
	"tutorlink/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewSlotCatalog,
		NewBookingPolicy,
		usecase.NewAuthUseCase,
		usecase.NewBookingUseCase,
		usecase.NewTokenValidator,
	),
)

func NewSlotCatalog(cfg config.Config) (booking.SlotCatalog, error) {
	return booking.NewSlotCatalog(cfg.Booking.Slots)
}

func NewBookingPolicy(cfg config.Config) config.BookingConfig {
	return cfg.Booking
}
