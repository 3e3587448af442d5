package interfaces

import (
	"context"

	"paybridge/internal/domain/entities"
)

//go:generate mockgen -source=payment_provider_interface.go -destination=mocks/payment_provider_mock.go -package=mock_interfaces

// IPaymentProvider is the unified contract both regional gateway adapters
// (and the supplementary card gateway) satisfy. Callers pick an adapter by
// provider tag and get identical result shapes regardless of the gateway.
//
// Create/verify/cancel never raise for payment-level failures: transport and
// gateway errors are normalized into a result with Success=false and a
// provider-agnostic error code. A returned error therefore only ever reflects
// misuse (nil receiver style bugs), and implementations here return the
// normalized result alone.
type IPaymentProvider interface {
	// GeneratePaymentURL builds the gateway redirect URL for an order.
	// Pure, no I/O.
	GeneratePaymentURL(order entities.PaymentOrder) (string, error)

	CreatePayment(ctx context.Context, order entities.PaymentOrder) entities.PaymentResult
	VerifyPayment(ctx context.Context, transactionID string) entities.PaymentVerifyResult
	CancelPayment(ctx context.Context, transactionID string) entities.PaymentResult
}
