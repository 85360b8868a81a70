package components

import (
	"cafe-fausse/internal/handler"
	"cafe-fausse/internal/handler/api"
	"cafe-fausse/internal/handler/middleware"
	"cafe-fausse/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewNewsletterHandler,
		api.NewAdminHandler,
		func(cfg config.Config) config.AdminConfig {
			return cfg.Admin
		},
		middleware.NewAdminMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
