package components

import (
	"venue-booking/internal/handler"
	"venue-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDraftHandler,
		api.NewVenueHandler,
	),
	fx.Invoke(handler.NewRouter),
)
