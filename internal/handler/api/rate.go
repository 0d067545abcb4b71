package api

import (
	"net/http"

	reqdto "staybilling/internal/handler/dto/request"
	resdto "staybilling/internal/handler/dto/response"
	"staybilling/internal/handler/httperr"
	"staybilling/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RateHandler struct {
	cmds commands.RateCommands
}

func NewRateHandler(cmds commands.RateCommands) *RateHandler {
	return &RateHandler{cmds: cmds}
}

// @Summary Activate platform rate
// @Description Deactivate the current rate and activate a new versioned one atomically
// @Tags rates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ActivateRateRequest true "Rate activation request"
// @Success 201 {object} resdto.RateResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /rates [post]
func (h *RateHandler) Activate(c *gin.Context) {
	var req reqdto.ActivateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	rec, err := h.cmds.ActivateRate(c.Request.Context(), req)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRateRecord(rec))
}

// @Summary Current platform rate
// @Description Get the currently active versioned rate
// @Tags rates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RateResponse
// @Failure 404 {object} map[string]string
// @Router /rates/current [get]
func (h *RateHandler) Current(c *gin.Context) {
	rec, err := h.cmds.CurrentRate(c.Request.Context())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRateRecord(rec))
}
