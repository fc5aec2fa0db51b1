package api

import (
	"log/slog"
	"net/http"

	reqdto "dogcatify-core/internal/handler/dto/request"
	"dogcatify-core/internal/pkg/errs"
	"dogcatify-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	cmds commands.WebhookCommands
}

func NewWebhookHandler(cmds commands.WebhookCommands) *WebhookHandler {
	return &WebhookHandler{cmds: cmds}
}

// @Summary Payment gateway webhook
// @Description Receive a payment notification and reconcile the order
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /webhooks/mercadopago [post]
func (h *WebhookHandler) HandleMercadoPago(c *gin.Context) {
	var notif reqdto.WebhookNotification
	if err := c.ShouldBindJSON(&notif); err != nil {
		// The gateway retries on non-2xx; a body we cannot parse will
		// never parse, so acknowledge and drop it.
		slog.Warn("unparseable webhook body", "error", err)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	if !notif.IsPayment() {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	result, err := h.cmds.ProcessPaymentNotification(c.Request.Context(), notif)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrUnknownReference):
			// Not our payment. Ack so the gateway stops retrying.
			c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		default:
			// Transient (gateway or DB down): non-2xx makes the
			// gateway redeliver later.
			slog.Error("webhook processing failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "retry"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"order_id": result.OrderID.String(),
	})
}
