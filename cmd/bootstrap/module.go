package bootstrap

import (
	"gearshare/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	MetricsModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
