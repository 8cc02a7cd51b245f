package components

import (
	"tutorlink/internal/handler"
	"tutorlink/internal/handler/api"
	"tutorlink/internal/handler/middleware"
	"tutorlink/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewCookieConfig,
		api.NewAuthHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewCookieConfig(cfg config.Config) config.CookieConfig {
	return cfg.Cookie
}
