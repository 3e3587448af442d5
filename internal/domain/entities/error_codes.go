package entities

// Normalized error codes carried inside failed results. Shared by every
// adapter so orchestration code can react without knowing the gateway.
const (
	ErrCodePaymentTimeout = "PAYMENT_TIMEOUT"
	ErrCodePaymentCreate  = "PAYMENT_CREATE_ERROR"
	ErrCodePaymentVerify  = "PAYMENT_VERIFY_ERROR"
	ErrCodePaymentCancel  = "PAYMENT_CANCEL_ERROR"
)
