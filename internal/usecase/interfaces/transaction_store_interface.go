package interfaces

import (
	"context"
	"errors"

	"paybridge/internal/domain/entities"
)

//go:generate mockgen -source=transaction_store_interface.go -destination=mocks/transaction_store_mock.go -package=mock_interfaces

// ErrTransactionNotFound is returned by stores when no transaction exists for
// the given id.
var ErrTransactionNotFound = errors.New("transaction not found")

// ITransactionStore is the persistence collaborator the Payme webhook
// dispatcher calls for transaction-state transitions. The dispatcher defines
// when to call it and which transition is expected; storage and
// at-most-one-writer-per-transaction-id guarantees are the store's concern.
type ITransactionStore interface {
	Get(ctx context.Context, id string) (entities.Transaction, error)
	Create(ctx context.Context, txn entities.Transaction) error
	Save(ctx context.Context, txn entities.Transaction) error
	// ListByCreatedRange returns transactions whose create time falls within
	// [from, to], both epoch milliseconds inclusive.
	ListByCreatedRange(ctx context.Context, from, to int64) ([]entities.Transaction, error)
}
