package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookHandler receives payment-update notifications from the processor
type WebhookHandler struct {
	logger *zap.Logger
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(logger *zap.Logger) *WebhookHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &WebhookHandler{logger: logger}
}

// HandleNotification godoc
// @Summary Receive a processor notification
// @Description Acknowledges Mercado Pago webhook notifications. Payment-topic notifications are logged; everything is answered 200 so the processor stops retrying.
// @Tags webhooks
// @Produce plain
// @Param topic query string false "Notification topic"
// @Param id query string false "Resource ID"
// @Success 200 {string} string "OK"
// @Router /webhook [post]
func (h *WebhookHandler) HandleNotification(c *gin.Context) {
	// Older notifications use topic/id, newer ones type/data.id
	topic := c.Query("topic")
	if topic == "" {
		topic = c.Query("type")
	}
	id := c.Query("id")
	if id == "" {
		id = c.Query("data.id")
	}

	if topic == "payment" {
		h.logger.Info("payment update notification received",
			zap.String("payment_id", id))
	} else {
		h.logger.Debug("ignoring notification",
			zap.String("topic", topic),
			zap.String("id", id))
	}

	c.String(http.StatusOK, "OK")
}
