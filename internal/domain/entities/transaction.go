package entities

import "time"

// TransactionState follows the Payme merchant-API state codes.
type TransactionState int

const (
	TransactionStateCreated                TransactionState = 1
	TransactionStateCompleted              TransactionState = 2
	TransactionStateCancelled              TransactionState = -1
	TransactionStateCancelledAfterComplete TransactionState = -2
)

// TransactionExpiry is how long an unpaid transaction stays valid after
// creation. Enforcement on expiry is a caller decision; the core only
// exposes the predicate.
const TransactionExpiry = 12 * time.Hour

// Transaction is the webhook-side lifecycle record for Payme transactions.
//
// Persistence is delegated to a TransactionStore supplied by the host; the
// core defines the state machine and the wire shapes only. Times are kept in
// epoch milliseconds because that is what the gateway speaks.

type Transaction struct {
	ID          string            `json:"id"`
	OrderID     string            `json:"order_id"`
	Amount      int64             `json:"amount"`
	State       TransactionState  `json:"state"`
	CreateTime  int64             `json:"create_time"`
	PerformTime int64             `json:"perform_time,omitempty"`
	CancelTime  int64             `json:"cancel_time,omitempty"`
	Reason      *int              `json:"reason,omitempty"`
	Account     map[string]string `json:"account,omitempty"`
}

// Perform transitions a created transaction to completed at the given time.
func (t *Transaction) Perform(now time.Time) {
	t.State = TransactionStateCompleted
	t.PerformTime = now.UnixMilli()
}

// Cancel transitions the transaction to a cancelled state, keeping track of
// whether the money had already been collected.
func (t *Transaction) Cancel(now time.Time, reason int) {
	if t.State == TransactionStateCompleted {
		t.State = TransactionStateCancelledAfterComplete
	} else {
		t.State = TransactionStateCancelled
	}
	t.CancelTime = now.UnixMilli()
	t.Reason = &reason
}

// Expired reports whether an unpaid transaction has outlived its window.
func (t *Transaction) Expired(now time.Time) bool {
	if t.State != TransactionStateCreated {
		return false
	}
	created := time.UnixMilli(t.CreateTime)
	return now.Sub(created) > TransactionExpiry
}
