package components

import (
	"venue-booking/internal/infra/venueapi"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var ClientModule = fx.Module("client",
	fx.Provide(
		fx.Annotate(
			venueapi.NewClient,
			fx.As(new(commands.VenueSource)),
			fx.As(new(commands.BookingGateway)),
			fx.As(new(queries.VenueReader)),
		),
	),
)
