package interfaces

import (
	"context"

	"paybridge/internal/domain/entities"
)

//go:generate mockgen -source=payment_intent_store_interface.go -destination=mocks/payment_intent_store_mock.go -package=mock_interfaces

// IPaymentIntentStore records create attempts for auditing. Recording is
// best-effort from the caller's point of view; a store failure must never
// fail the payment itself.
type IPaymentIntentStore interface {
	Put(ctx context.Context, intent entities.PaymentIntent) error
	ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentIntent, error)
}
