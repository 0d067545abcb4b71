package api

import (
	"net/http"
	"strconv"

	resdto "staybilling/internal/handler/dto/response"
	"staybilling/internal/handler/httperr"
	"staybilling/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuditHandler struct {
	q queries.AuditQueries
}

func NewAuditHandler(q queries.AuditQueries) *AuditHandler {
	return &AuditHandler{q: q}
}

// @Summary Payment audit trail
// @Description List every calculation entry recorded for a payment, oldest first
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {array} resdto.AuditEntryResponse
// @Failure 400 {object} map[string]string
// @Router /payments/{id}/audit [get]
func (h *AuditHandler) Trail(c *gin.Context) {
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	views, err := h.q.Trail(c.Request.Context(), paymentID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load audit trail", nil)
		return
	}
	resp, err := resdto.FromAuditEntryViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Recent validation failures
// @Description List the most recent failed consistency checks for operator review
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max entries" default(50)
// @Success 200 {array} resdto.AuditEntryResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /audit/validation-failures [get]
func (h *AuditHandler) ValidationFailures(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = parsed
	}
	views, err := h.q.ValidationFailures(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load validation failures", nil)
		return
	}
	resp, err := resdto.FromAuditEntryViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
