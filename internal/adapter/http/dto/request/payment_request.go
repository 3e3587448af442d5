package request

import (
	"strings"

	"paybridge/internal/domain/entities"
)

// CreatePaymentRequest is the merchant-facing payload for creating a payment
// (or just a redirect URL) through a chosen gateway.
type CreatePaymentRequest struct {
	OrderID     string            `json:"order_id"`
	Amount      int64             `json:"amount" binding:"required"`
	Currency    string            `json:"currency"`
	Description string            `json:"description"`
	ReturnURL   string            `json:"return_url"`
	CancelURL   string            `json:"cancel_url"`
	Language    string            `json:"language"`
	Extra       map[string]string `json:"extra"`
}

// ToOrder builds the domain order. The order id stays empty when the caller
// did not assign one; the use case generates it in that case.
func (r CreatePaymentRequest) ToOrder() entities.PaymentOrder {
	return entities.PaymentOrder{
		ID:          strings.TrimSpace(r.OrderID),
		Amount:      entities.Amount{Value: r.Amount, Currency: strings.TrimSpace(r.Currency)},
		Description: r.Description,
		ReturnURL:   r.ReturnURL,
		CancelURL:   r.CancelURL,
		Language:    r.Language,
		Extra:       r.Extra,
	}
}
