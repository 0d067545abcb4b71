package api

import (
	"errors"
	"net/http"

	"staybilling/internal/domain/audit"
	"staybilling/internal/handler/httperr"
	"staybilling/internal/handler/middleware"
	"staybilling/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// abortWithDomainError maps command-layer sentinels to HTTP statuses.
// Unknown errors surface as 500 without leaking internals.
func abortWithDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, commands.ErrPaymentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Payment not found", nil)
	case errors.Is(err, commands.ErrRefundNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Refund not found", nil)
	case errors.Is(err, commands.ErrCouponNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
	case errors.Is(err, commands.ErrPaymentExists):
		httperr.AbortWithError(c, http.StatusConflict, err, "Payment already exists for this booking", nil)
	case errors.Is(err, commands.ErrVersionConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Refund was modified concurrently, reload and retry", nil)
	case errors.Is(err, commands.ErrInvalidCoupon):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or expired coupon", nil)
	case errors.Is(err, commands.ErrInvalidRate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid platform rate", nil)
	case errors.Is(err, commands.ErrNoActiveRate):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No active platform rate", nil)
	case errors.Is(err, commands.ErrPriceMismatch):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Price verification failed", nil)
	case errors.Is(err, commands.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid refund status transition", nil)
	case errors.Is(err, commands.ErrRefundPolicyViolated):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Refund not permitted for this booking", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// securityContextFrom snapshots the caller identity for the audit
// trail. Fields missing on unauthenticated paths stay empty.
func securityContextFrom(c *gin.Context) audit.SecurityContext {
	sec := audit.SecurityContext{
		ClientIP:  c.ClientIP(),
		RequestID: middleware.GetRequestID(c),
	}
	if userID, ok := middleware.GetUserID(c); ok {
		id := userID
		sec.UserID = &id
	}
	if role, ok := middleware.GetUserRole(c); ok {
		sec.Role = role
	}
	return sec
}
