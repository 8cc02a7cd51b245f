package components

import (
	"tutorlink/internal/infra/repository"
	"tutorlink/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repository.NewTutorRepository,
			fx.As(new(usecase.TutorRepository)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(usecase.NotificationRepository)),
		),
	),
)
