package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"staybilling/internal/handler/api"
	"staybilling/internal/handler/middleware"
	"staybilling/internal/pkg/config"
	"staybilling/internal/pkg/jwt"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	pricingHandler *api.PricingHandler,
	paymentHandler *api.PaymentHandler,
	refundHandler *api.RefundHandler,
	rateHandler *api.RateHandler,
	auditHandler *api.AuditHandler,
	authMiddleware *middleware.AuthMiddleware,
	quoteLimiter *middleware.QuoteRateLimiter,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, pricingHandler, paymentHandler, refundHandler, rateHandler, auditHandler, authMiddleware, quoteLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	pricingHandler *api.PricingHandler,
	paymentHandler *api.PaymentHandler,
	refundHandler *api.RefundHandler,
	rateHandler *api.RateHandler,
	auditHandler *api.AuditHandler,
	authMiddleware *middleware.AuthMiddleware,
	quoteLimiter *middleware.QuoteRateLimiter,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		pricing := apiGroup.Group("/pricing")
		pricing.Use(authMiddleware.RequireAuth())
		{
			addRoutes(pricing, []route{
				{Method: http.MethodPost, Path: "/quote", Handler: pricingHandler.Quote, Mw: []gin.HandlerFunc{quoteLimiter.Limit()}},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "", Handler: paymentHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: paymentHandler.Get},
				{Method: http.MethodGet, Path: "/:id/audit", Handler: auditHandler.Trail},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "/:bookingId/payment", Handler: paymentHandler.GetByBooking},
			})
		}

		refunds := apiGroup.Group("/refunds")
		refunds.Use(authMiddleware.RequireAuth())
		{
			addRoutes(refunds, []route{
				{Method: http.MethodPost, Path: "/compute", Handler: refundHandler.Compute},
				{Method: http.MethodPost, Path: "", Handler: refundHandler.Create},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: refundHandler.Transition,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(jwt.RoleAdmin)}},
			})
		}

		rates := apiGroup.Group("/rates")
		rates.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(jwt.RoleAdmin))
		{
			addRoutes(rates, []route{
				{Method: http.MethodPost, Path: "", Handler: rateHandler.Activate},
				{Method: http.MethodGet, Path: "/current", Handler: rateHandler.Current},
			})
		}

		audit := apiGroup.Group("/audit")
		audit.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(jwt.RoleAdmin))
		{
			addRoutes(audit, []route{
				{Method: http.MethodGet, Path: "/validation-failures", Handler: auditHandler.ValidationFailures},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
