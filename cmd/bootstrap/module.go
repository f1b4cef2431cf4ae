package bootstrap

import (
	"venue-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.ClientModule,
	components.UseCaseModule,
	components.HandlerModule,
)
