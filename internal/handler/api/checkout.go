package api

import (
	"net/http"

	reqdto "dogcatify-core/internal/handler/dto/request"
	resdto "dogcatify-core/internal/handler/dto/response"
	"dogcatify-core/internal/handler/httperr"
	"dogcatify-core/internal/pkg/errs"
	"dogcatify-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	cmds        commands.CheckoutCommands
	partnerCmds commands.PartnerCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands, partnerCmds commands.PartnerCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds, partnerCmds: partnerCmds}
}

// @Summary Checkout
// @Description Create an order with its hosted payment session
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Checkout(c.Request.Context(), req, req.CustomerID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrPartnerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Partner not found", nil)
		case errs.Is(err, commands.ErrPartnerConfigInvalid):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Partner cannot accept payments", nil)
		case errs.Is(err, commands.ErrCheckoutValidation),
			errs.Is(err, commands.ErrBookingRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid checkout request", nil)
		case errs.Is(err, commands.ErrPreferenceCreationFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment session could not be created", nil)
		case errs.Is(err, commands.ErrOrderConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Order was modified concurrently", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}

// @Summary Connect partner gateway
// @Description Exchange a partner's OAuth authorization code for credentials
// @Tags partners
// @Accept json
// @Produce json
// @Param id path string true "Partner ID"
// @Param request body reqdto.ConnectPartnerRequest true "Connect request"
// @Success 200 {object} resdto.ConnectPartnerResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /partners/{id}/connect [post]
func (h *CheckoutHandler) ConnectPartner(c *gin.Context) {
	partnerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid partner id", nil)
		return
	}

	var req reqdto.ConnectPartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.partnerCmds.ConnectGateway(c.Request.Context(), partnerID, req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrPartnerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Partner not found", nil)
		case errs.Is(err, commands.ErrOAuthExchangeFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Gateway rejected the authorization code", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromConnectResult(result))
}
