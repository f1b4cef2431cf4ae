package bootstrap

import (
	"venue-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.UpstreamConfig { return cfg.Upstream },
	),
)
