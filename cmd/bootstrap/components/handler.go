package components

import (
	"staybilling/internal/handler"
	"staybilling/internal/handler/api"
	"staybilling/internal/handler/middleware"
	"staybilling/internal/infra/repository"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPricingHandler,
		api.NewPaymentHandler,
		api.NewRefundHandler,
		api.NewRateHandler,
		api.NewAuditHandler,
		middleware.NewAuthMiddleware,
		func(r *repository.RateLimitRepository) middleware.RateLimitStore { return r },
		middleware.NewQuoteRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)
