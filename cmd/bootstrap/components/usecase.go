package components

import (
	"cafe-fausse/internal/domain/booking"
	"cafe-fausse/internal/pkg/clock"
	"cafe-fausse/internal/pkg/config"
	"cafe-fausse/internal/usecase/commands"
	"cafe-fausse/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	booking.NewRandomizer,
	func(cfg config.Config) config.BookingConfig {
		return cfg.Booking
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewNewsletterCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOverviewQueries,
	),
)
