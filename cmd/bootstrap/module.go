package bootstrap

import (
	"facility-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	PersistenceModule,
	JWTModule,
	components.UseCaseModule,
	components.HandlerModule,
)
