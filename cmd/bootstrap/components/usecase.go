package components

import (
	"staybilling/internal/domain/pricing"
	"staybilling/internal/pkg/clock"
	"staybilling/internal/pkg/config"
	"staybilling/internal/usecase/commands"
	"staybilling/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) pricing.FeeSchedule {
		return pricing.FeeSchedule{
			GSTRate:         cfg.Billing.GSTRate,
			ProcessingRate:  cfg.Billing.ProcessingRate,
			ProcessingFixed: pricing.NewMoney(cfg.Billing.ProcessingFixedCents),
		}
	},
	pricing.NewEngine,
	func(cfg config.Config) config.BillingConfig {
		return cfg.Billing
	},
	commands.NewRateResolver,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPricingUseCase,
		commands.NewPaymentUseCase,
		commands.NewRefundUseCase,
		commands.NewRateUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAuditQueries,
		queries.NewPaymentQueries,
	),
)
