package bootstrap

import (
	"staybilling/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module assembles the whole settlement service: config and database
// first, then the repository/usecase/handler layers in dependency order.
var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
