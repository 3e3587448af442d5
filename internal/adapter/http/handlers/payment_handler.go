package handlers

import (
	"errors"
	"log"
	"net/http"

	"paybridge/internal/adapter/http/dto/request"
	"paybridge/internal/adapter/http/dto/response"
	"paybridge/internal/usecase"
	"paybridge/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes the merchant-facing API over the unified provider
// contract.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment creates a payment through the provider named in the path.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	provider := c.Param("provider")
	log.Printf("[payment][handler] create start provider=%s", provider)

	var req request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] invalid payload provider=%s err=%v", provider, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.CreatePayment(c.Request.Context(), provider, req.ToOrder())
	if err != nil {
		log.Printf("[payment][handler] create failed provider=%s err=%v", provider, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create done provider=%s success=%t", provider, result.Success)

	c.JSON(http.StatusOK, response.FromPaymentResult(result))
}

// GetPaymentURL builds the gateway redirect URL without creating a payment.
func (h *PaymentHandler) GetPaymentURL(c *gin.Context) {
	provider := c.Param("provider")

	var req request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] invalid payload provider=%s err=%v", provider, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	url, err := h.usecase.GeneratePaymentURL(provider, req.ToOrder())
	if err != nil {
		log.Printf("[payment][handler] url failed provider=%s err=%v", provider, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PaymentURLResponse{PaymentURL: url})
}

// VerifyPayment returns the gateway's view of a transaction.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	provider := c.Param("provider")
	transactionID := c.Param("transaction_id")
	log.Printf("[payment][handler] verify start provider=%s transaction_id=%s", provider, transactionID)

	result, err := h.usecase.VerifyPayment(c.Request.Context(), provider, transactionID)
	if err != nil {
		log.Printf("[payment][handler] verify failed provider=%s err=%v", provider, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentVerifyResult(result))
}

// CancelPayment cancels a transaction at the gateway.
func (h *PaymentHandler) CancelPayment(c *gin.Context) {
	provider := c.Param("provider")
	transactionID := c.Param("transaction_id")
	log.Printf("[payment][handler] cancel start provider=%s transaction_id=%s", provider, transactionID)

	result, err := h.usecase.CancelPayment(c.Request.Context(), provider, transactionID)
	if err != nil {
		log.Printf("[payment][handler] cancel failed provider=%s err=%v", provider, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentResult(result))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownProvider):
		return pkg.NewDomainErrorSimple("PROVIDER_NOT_FOUND", "Unknown payment provider", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidAmount), errors.Is(err, usecase.ErrInvalidTransactionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainErrorSimple("PAYMENT_URL_UNAVAILABLE", err.Error(), http.StatusUnprocessableEntity)
	}
}
