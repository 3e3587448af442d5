package entities

import "time"

// PaymentStatus is the unified status shared by every gateway adapter.
//
// Each gateway reports status in its own vocabulary (numeric codes for Click,
// transaction states for Payme, strings for Mercado Pago); adapters map those
// into this enum so orchestration code never branches on gateway specifics.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Amount is a minor-unit-agnostic money value. Adapters apply their own
// scaling (e.g. Payme multiplies by 100) at the wire boundary.
type Amount struct {
	Value    int64  `json:"amount"`
	Currency string `json:"currency,omitempty"`
}

// PaymentOrder is the caller-owned description of a payment attempt.
// Immutable once constructed; ID must be unique per attempt.
type PaymentOrder struct {
	ID          string            `json:"id"`
	Amount      Amount            `json:"amount"`
	Description string            `json:"description,omitempty"`
	ReturnURL   string            `json:"return_url,omitempty"`
	CancelURL   string            `json:"cancel_url,omitempty"`
	Language    string            `json:"language,omitempty"`
	Extra       map[string]string `json:"extra,omitempty"`
}

// PaymentError is the normalized failure reported inside a result. Outbound
// operations never raise; they return a result with Success=false instead.
type PaymentError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PaymentResult struct {
	Success       bool          `json:"success"`
	TransactionID string        `json:"transaction_id,omitempty"`
	RedirectURL   string        `json:"redirect_url,omitempty"`
	Error         *PaymentError `json:"error,omitempty"`
}

// PaymentVerifyResult extends PaymentResult with the settled status snapshot.
type PaymentVerifyResult struct {
	PaymentResult
	Status     PaymentStatus `json:"status,omitempty"`
	PaidAmount *Amount       `json:"paid_amount,omitempty"`
	PaidAt     *time.Time    `json:"paid_at,omitempty"`
}

func FailedResult(code, message string) PaymentResult {
	return PaymentResult{Success: false, Error: &PaymentError{Code: code, Message: message}}
}

func FailedVerifyResult(code, message string) PaymentVerifyResult {
	return PaymentVerifyResult{PaymentResult: FailedResult(code, message), Status: PaymentStatusFailed}
}
