package entities

// PaymentIntent is the audit record of a single create attempt. One row per
// call, keyed by a merchant-side uuid, so failed gateway attempts remain
// visible after the fact.
type PaymentIntent struct {
	ID            string `json:"id"`
	Provider      string `json:"provider"`
	OrderID       string `json:"order_id"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id,omitempty"`
	ErrorCode     string `json:"error_code,omitempty"`
	CreatedAt     int64  `json:"created_at"` // epoch ms
}
