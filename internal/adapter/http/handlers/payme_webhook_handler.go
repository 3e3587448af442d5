package handlers

import (
	"context"
	"io"
	"log"
	"net/http"

	"paybridge/internal/infrastructure/gateways/payme"

	"github.com/gin-gonic/gin"
)

// paymeWebhookDispatcher is satisfied by *payme.Webhook.
type paymeWebhookDispatcher interface {
	Handle(ctx context.Context, authHeader string, body []byte) payme.RPCResponse
}

// PaymeWebhookHandler receives the gateway's JSON-RPC callbacks. Like the
// protocol requires, every reply is HTTP 200 with either a result or an
// error envelope.

type PaymeWebhookHandler struct {
	dispatcher paymeWebhookDispatcher
}

func NewPaymeWebhookHandler(dispatcher paymeWebhookDispatcher) *PaymeWebhookHandler {
	return &PaymeWebhookHandler{dispatcher: dispatcher}
}

func (h *PaymeWebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("[payme][handler] body read failed err=%v", err)
		c.JSON(http.StatusOK, payme.RPCResponse{Error: &payme.RPCError{Code: payme.CodeParseError, Message: "could not read request"}})
		return
	}

	resp := h.dispatcher.Handle(c.Request.Context(), c.GetHeader("Authorization"), body)
	c.JSON(http.StatusOK, resp)
}
