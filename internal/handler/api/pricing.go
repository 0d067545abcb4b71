package api

import (
	"net/http"

	reqdto "staybilling/internal/handler/dto/request"
	resdto "staybilling/internal/handler/dto/response"
	"staybilling/internal/handler/httperr"
	"staybilling/internal/handler/middleware"
	"staybilling/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	cmds commands.PricingCommands
}

func NewPricingHandler(cmds commands.PricingCommands) *PricingHandler {
	return &PricingHandler{cmds: cmds}
}

// @Summary Quote a booking
// @Description Compute the full settlement breakdown for the given booking parameters
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrDomainValidation, "Unauthorized", nil)
		return
	}
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Quote(c.Request.Context(), req, userID, securityContextFrom(c))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteResult(result))
}
