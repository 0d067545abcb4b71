package components

import (
	"staybilling/internal/infra/repository"
	"staybilling/internal/usecase/commands"
	"staybilling/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewRateRepository,
			fx.As(new(commands.RateRepository)),
		),
		fx.Annotate(
			repository.NewCouponRepository,
			fx.As(new(commands.CouponRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewPaymentRepository,
			fx.As(new(commands.PaymentRepository)),
			fx.As(new(queries.PaymentViewRepo)),
		),
		fx.Annotate(
			repository.NewRefundRepository,
			fx.As(new(commands.RefundRepository)),
		),
		fx.Annotate(
			repository.NewAuditRepository,
			fx.As(new(commands.AuditRepository)),
			fx.As(new(queries.AuditViewRepo)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		repository.NewRateLimitRepository,
	),
)
