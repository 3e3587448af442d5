package repository

import (
	"context"
	"errors"
	"sort"
	"sync"

	"paybridge/internal/domain/entities"
	"paybridge/internal/usecase/interfaces"
)

// MemoryTransactionStore keeps transactions in process memory. Used in tests
// and when the service runs without DynamoDB. The mutex gives the
// one-writer-per-transaction-id guarantee the webhook dispatcher expects.
type MemoryTransactionStore struct {
	mu   sync.RWMutex
	txns map[string]entities.Transaction
}

var _ interfaces.ITransactionStore = (*MemoryTransactionStore)(nil)

func NewMemoryTransactionStore() *MemoryTransactionStore {
	return &MemoryTransactionStore{txns: make(map[string]entities.Transaction)}
}

func (s *MemoryTransactionStore) Get(_ context.Context, id string) (entities.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	txn, ok := s.txns[id]
	if !ok {
		return entities.Transaction{}, interfaces.ErrTransactionNotFound
	}
	return txn, nil
}

func (s *MemoryTransactionStore) Create(_ context.Context, txn entities.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.txns[txn.ID]; ok {
		return errors.New("transaction already exists")
	}
	s.txns[txn.ID] = txn
	return nil
}

func (s *MemoryTransactionStore) Save(_ context.Context, txn entities.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.txns[txn.ID]; !ok {
		return interfaces.ErrTransactionNotFound
	}
	s.txns[txn.ID] = txn
	return nil
}

func (s *MemoryTransactionStore) ListByCreatedRange(_ context.Context, from, to int64) ([]entities.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Transaction, 0)
	for _, txn := range s.txns {
		if txn.CreateTime >= from && txn.CreateTime <= to {
			out = append(out, txn)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreateTime < out[j].CreateTime })
	return out, nil
}
