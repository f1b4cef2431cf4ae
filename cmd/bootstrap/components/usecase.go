package components

import (
	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewReservationFactory,
	commands.NewSessionStore,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
	),
)

func NewReservationFactory(clk clock.Clock, cfg config.Config) (*reservation.Factory, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return nil, err
	}
	return reservation.NewFactory(clk, cfg.Booking.Policy(), loc), nil
}
