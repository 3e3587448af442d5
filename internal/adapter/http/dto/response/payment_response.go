package response

import (
	"time"

	"paybridge/internal/domain/entities"
)

type PaymentErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PaymentResponse struct {
	Success       bool                  `json:"success"`
	TransactionID string                `json:"transaction_id,omitempty"`
	RedirectURL   string                `json:"redirect_url,omitempty"`
	Error         *PaymentErrorResponse `json:"error,omitempty"`
}

type PaymentVerifyResponse struct {
	PaymentResponse
	Status     string     `json:"status,omitempty"`
	PaidAmount *int64     `json:"paid_amount,omitempty"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
}

type PaymentURLResponse struct {
	PaymentURL string `json:"payment_url"`
}

func FromPaymentResult(r entities.PaymentResult) PaymentResponse {
	resp := PaymentResponse{
		Success:       r.Success,
		TransactionID: r.TransactionID,
		RedirectURL:   r.RedirectURL,
	}
	if r.Error != nil {
		resp.Error = &PaymentErrorResponse{Code: r.Error.Code, Message: r.Error.Message}
	}
	return resp
}

func FromPaymentVerifyResult(r entities.PaymentVerifyResult) PaymentVerifyResponse {
	resp := PaymentVerifyResponse{
		PaymentResponse: FromPaymentResult(r.PaymentResult),
		Status:          string(r.Status),
		PaidAt:          r.PaidAt,
	}
	if r.PaidAmount != nil {
		resp.PaidAmount = &r.PaidAmount.Value
	}
	return resp
}
