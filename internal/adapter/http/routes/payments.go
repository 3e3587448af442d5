package routes

import (
	"paybridge/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathWebhooks = "/webhooks"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:provider", paymentHandler.CreatePayment)
		payments.POST("/:provider/url", paymentHandler.GetPaymentURL)
		payments.GET("/:provider/:transaction_id", paymentHandler.VerifyPayment)
		payments.DELETE("/:provider/:transaction_id", paymentHandler.CancelPayment)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, clickHandler *handlers.ClickWebhookHandler, paymeHandler *handlers.PaymeWebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		if clickHandler != nil {
			webhooks.POST("/click", clickHandler.Handle)
		}
		if paymeHandler != nil {
			webhooks.POST("/payme", paymeHandler.Handle)
		}
	}
}
