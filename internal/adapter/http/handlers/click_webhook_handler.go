package handlers

import (
	"log"
	"net/http"

	"paybridge/internal/infrastructure/gateways/click"

	"github.com/gin-gonic/gin"
)

// clickWebhookProcessor is satisfied by *click.Provider.
type clickWebhookProcessor interface {
	HandleWebhook(req click.WebhookRequest) click.WebhookResponse
}

// ClickWebhookHandler receives the gateway's form-encoded callbacks and
// returns the protocol response verbatim. The HTTP status is always 200;
// failures travel in the body's error field.

type ClickWebhookHandler struct {
	processor clickWebhookProcessor
}

func NewClickWebhookHandler(processor clickWebhookProcessor) *ClickWebhookHandler {
	return &ClickWebhookHandler{processor: processor}
}

func (h *ClickWebhookHandler) Handle(c *gin.Context) {
	var req click.WebhookRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Printf("[click][handler] malformed webhook err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": -8, "error_note": "Bad request"})
		return
	}

	resp := h.processor.HandleWebhook(req)
	c.JSON(http.StatusOK, resp)
}
