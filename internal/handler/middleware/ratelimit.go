package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"staybilling/internal/handler/httperr"
	"staybilling/internal/pkg/clock"
	"staybilling/internal/pkg/config"
	"staybilling/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errTooManyRequests = errs.New("too many pricing requests")

type RateLimitStore interface {
	Increment(ctx context.Context, subject string, windowStart time.Time) (int64, error)
}

// QuoteRateLimiter throttles quote traffic per caller with a fixed
// window. The counter lives in the database so every instance shares
// one view of the window. Store failures let the request through:
// throttling protects capacity, it is not an integrity control.
type QuoteRateLimiter struct {
	store  RateLimitStore
	clock  clock.Clock
	window time.Duration
	limit  int64
}

func NewQuoteRateLimiter(store RateLimitStore, clock clock.Clock, cfg config.BillingConfig) *QuoteRateLimiter {
	return &QuoteRateLimiter{
		store:  store,
		clock:  clock,
		window: time.Duration(cfg.QuoteWindowSeconds) * time.Second,
		limit:  int64(cfg.QuoteWindowLimit),
	}
}

func (m *QuoteRateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := c.ClientIP()
		if userID, ok := GetUserID(c); ok {
			subject = userID.String()
		}

		windowStart := m.clock.Now().Truncate(m.window)
		count, err := m.store.Increment(c.Request.Context(), subject, windowStart)
		if err != nil {
			slog.Warn("rate limit check failed, allowing request", "error", err)
			c.Next()
			return
		}

		if count > m.limit {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errTooManyRequests,
				"Too many requests", gin.H{"retry_after_seconds": int(m.window.Seconds())})
			return
		}
		c.Next()
	}
}
