package entities

import (
	"testing"
	"time"
)

func TestTransactionLifecycle(t *testing.T) {
	now := time.Now().UTC()

	t.Run("perform marks completed", func(t *testing.T) {
		txn := Transaction{ID: "t1", State: TransactionStateCreated, CreateTime: now.UnixMilli()}
		txn.Perform(now)
		if txn.State != TransactionStateCompleted {
			t.Fatalf("expected completed, got %d", txn.State)
		}
		if txn.PerformTime != now.UnixMilli() {
			t.Fatalf("expected perform_time %d, got %d", now.UnixMilli(), txn.PerformTime)
		}
	})

	t.Run("cancel before perform", func(t *testing.T) {
		txn := Transaction{ID: "t1", State: TransactionStateCreated, CreateTime: now.UnixMilli()}
		txn.Cancel(now, 3)
		if txn.State != TransactionStateCancelled {
			t.Fatalf("expected cancelled, got %d", txn.State)
		}
		if txn.Reason == nil || *txn.Reason != 3 {
			t.Fatalf("expected reason 3, got %v", txn.Reason)
		}
	})

	t.Run("cancel after perform", func(t *testing.T) {
		txn := Transaction{ID: "t1", State: TransactionStateCreated, CreateTime: now.UnixMilli()}
		txn.Perform(now)
		txn.Cancel(now, 5)
		if txn.State != TransactionStateCancelledAfterComplete {
			t.Fatalf("expected cancelled-after-complete, got %d", txn.State)
		}
	})
}

func TestTransactionExpired(t *testing.T) {
	now := time.Now().UTC()

	t.Run("fresh unpaid transaction is not expired", func(t *testing.T) {
		txn := Transaction{State: TransactionStateCreated, CreateTime: now.Add(-time.Hour).UnixMilli()}
		if txn.Expired(now) {
			t.Fatal("expected not expired")
		}
	})

	t.Run("unpaid transaction past the window is expired", func(t *testing.T) {
		txn := Transaction{State: TransactionStateCreated, CreateTime: now.Add(-13 * time.Hour).UnixMilli()}
		if !txn.Expired(now) {
			t.Fatal("expected expired")
		}
	})

	t.Run("completed transaction never expires", func(t *testing.T) {
		txn := Transaction{State: TransactionStateCompleted, CreateTime: now.Add(-24 * time.Hour).UnixMilli()}
		if txn.Expired(now) {
			t.Fatal("expected not expired")
		}
	})
}
