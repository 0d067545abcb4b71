package api

import (
	"net/http"

	reqdto "staybilling/internal/handler/dto/request"
	resdto "staybilling/internal/handler/dto/response"
	"staybilling/internal/handler/httperr"
	"staybilling/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RefundHandler struct {
	cmds commands.RefundCommands
}

func NewRefundHandler(cmds commands.RefundCommands) *RefundHandler {
	return &RefundHandler{cmds: cmds}
}

// @Summary Preview refund
// @Description Compute what a refund would yield without creating one
// @Tags refunds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ComputeRefundRequest true "Refund preview request"
// @Success 200 {object} resdto.RefundComputationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /refunds/compute [post]
func (h *RefundHandler) Compute(c *gin.Context) {
	var req reqdto.ComputeRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.ComputeRefund(c.Request.Context(), req, securityContextFrom(c))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRefundResult(result))
}

// @Summary Request refund
// @Description Compute and persist a pending refund request
// @Tags refunds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRefundRequest true "Refund request"
// @Success 201 {object} resdto.RefundResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /refunds [post]
func (h *RefundHandler) Create(c *gin.Context) {
	var req reqdto.CreateRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	rec, err := h.cmds.CreateRefund(c.Request.Context(), req, securityContextFrom(c))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRefundRecord(rec))
}

// @Summary Transition refund
// @Description Move a refund through its lifecycle under an optimistic version check
// @Tags refunds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Refund ID"
// @Param request body reqdto.TransitionRefundRequest true "Transition request"
// @Success 200 {object} resdto.RefundResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /refunds/{id}/status [patch]
func (h *RefundHandler) Transition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.TransitionRefundRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	rec, err := h.cmds.TransitionRefund(c.Request.Context(), id, req)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRefundRecord(rec))
}
