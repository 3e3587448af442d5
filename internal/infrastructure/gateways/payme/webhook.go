package payme

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"paybridge/internal/domain/entities"
	"paybridge/internal/infrastructure/signature"
	"paybridge/internal/usecase/interfaces"
)

// AllowPerformFunc is the policy hook consulted by CheckPerformTransaction.
// Returning an *RPCError rejects the request with that exact code; any other
// error is reported as an invalid account.
type AllowPerformFunc func(ctx context.Context, amount int64, account map[string]string) error

// Webhook is the inbound merchant-API dispatcher. It owns no transaction
// state: every lifecycle transition goes through the injected store, which
// must guarantee at-most-one-writer per transaction id.
type Webhook struct {
	authValue    string
	store        interfaces.ITransactionStore
	allowPerform AllowPerformFunc
	now          func() time.Time
}

func NewWebhook(cfg Config, store interfaces.ITransactionStore) (*Webhook, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		log.Printf("[payme][webhook] invalid config err=%v", err)
		return nil, err
	}
	if store == nil {
		return nil, errors.New("payme: webhook requires a transaction store")
	}
	return &Webhook{
		authValue: signature.BasicAuthHeader(cfg.Login, cfg.Password),
		store:     store,
		now:       time.Now,
	}, nil
}

// SetAllowPerform installs the caller's order-validation policy. Without it
// every CheckPerformTransaction is allowed.
func (w *Webhook) SetAllowPerform(fn AllowPerformFunc) { w.allowPerform = fn }

// Handle verifies authorization, decodes the envelope and dispatches on the
// method. Protocol failures come back inside the error envelope; Handle never
// returns a Go error because an unmatched method or bad payload is a normal
// branch of the protocol.
func (w *Webhook) Handle(ctx context.Context, authHeader string, body []byte) RPCResponse {
	var req RPCRequest
	if err := json.Unmarshal(body, &req); err != nil {
		log.Printf("[payme][webhook] malformed envelope err=%v", err)
		return errorResponse(0, CodeParseError, "could not parse request")
	}

	if authHeader != w.authValue {
		log.Printf("[payme][webhook] authorization mismatch method=%s", req.Method)
		return errorResponse(req.ID, CodeInsufficientPrivilege, "insufficient privilege")
	}

	switch req.Method {
	case MethodCheckPerformTransaction:
		return w.checkPerform(ctx, req)
	case MethodCreateTransaction:
		return w.create(ctx, req)
	case MethodPerformTransaction:
		return w.perform(ctx, req)
	case MethodCancelTransaction:
		return w.cancel(ctx, req)
	case MethodCheckTransaction:
		return w.check(ctx, req)
	case MethodGetStatement:
		return w.statement(ctx, req)
	default:
		log.Printf("[payme][webhook] unknown method=%q", req.Method)
		return errorResponse(req.ID, CodeMethodNotFound, "method not found")
	}
}

func (w *Webhook) checkPerform(ctx context.Context, req RPCRequest) RPCResponse {
	var params CheckPerformParams
	if err := json.Unmarshal(req.Params, &params); err != nil || params.Amount <= 0 || len(params.Account) == 0 {
		return errorResponse(req.ID, CodeParseError, "invalid CheckPerformTransaction params")
	}

	if w.allowPerform != nil {
		if err := w.allowPerform(ctx, params.Amount, params.Account); err != nil {
			var rpcErr *RPCError
			if errors.As(err, &rpcErr) {
				return errorResponse(req.ID, rpcErr.Code, rpcErr.Message)
			}
			log.Printf("[payme][webhook] check-perform rejected err=%v", err)
			return errorResponse(req.ID, CodeInvalidAccount, err.Error())
		}
	}
	return resultResponse(req.ID, CheckPerformResult{Allow: true})
}

func (w *Webhook) create(ctx context.Context, req RPCRequest) RPCResponse {
	var params CreateParams
	if err := json.Unmarshal(req.Params, &params); err != nil || params.ID == "" || params.Time <= 0 || params.Amount <= 0 {
		return errorResponse(req.ID, CodeParseError, "invalid CreateTransaction params")
	}

	existing, err := w.store.Get(ctx, params.ID)
	switch {
	case err == nil:
		// The gateway retries CreateTransaction; an existing created
		// transaction is answered with its original snapshot.
		if existing.State != entities.TransactionStateCreated {
			return errorResponse(req.ID, CodeCannotPerform, "transaction already finalized")
		}
		return resultResponse(req.ID, CreateResult{
			CreateTime:  existing.CreateTime,
			Transaction: existing.ID,
			State:       int(existing.State),
		})
	case errors.Is(err, interfaces.ErrTransactionNotFound):
		// fall through to creation
	default:
		log.Printf("[payme][webhook] store get failed id=%s err=%v", params.ID, err)
		return errorResponse(req.ID, CodeSystemError, "system error")
	}

	txn := entities.Transaction{
		ID:         params.ID,
		OrderID:    params.Account["order_id"],
		Amount:     params.Amount,
		State:      entities.TransactionStateCreated,
		CreateTime: w.now().UnixMilli(),
		Account:    params.Account,
	}
	if err := w.store.Create(ctx, txn); err != nil {
		log.Printf("[payme][webhook] store create failed id=%s err=%v", params.ID, err)
		return errorResponse(req.ID, CodeSystemError, "system error")
	}
	log.Printf("[payme][webhook] transaction created id=%s order_id=%s amount=%d", txn.ID, txn.OrderID, txn.Amount)
	return resultResponse(req.ID, CreateResult{
		CreateTime:  txn.CreateTime,
		Transaction: txn.ID,
		State:       int(txn.State),
	})
}

func (w *Webhook) perform(ctx context.Context, req RPCRequest) RPCResponse {
	var params PerformParams
	if err := json.Unmarshal(req.Params, &params); err != nil || params.ID == "" {
		return errorResponse(req.ID, CodeParseError, "invalid PerformTransaction params")
	}

	txn, resp, ok := w.load(ctx, req, params.ID)
	if !ok {
		return resp
	}

	switch txn.State {
	case entities.TransactionStateCreated:
		txn.Perform(w.now())
		if err := w.store.Save(ctx, txn); err != nil {
			log.Printf("[payme][webhook] store save failed id=%s err=%v", txn.ID, err)
			return errorResponse(req.ID, CodeSystemError, "system error")
		}
		log.Printf("[payme][webhook] transaction performed id=%s", txn.ID)
	case entities.TransactionStateCompleted:
		// Gateway retry; answer with the original perform time.
	default:
		return errorResponse(req.ID, CodeCannotPerform, "transaction cancelled")
	}

	return resultResponse(req.ID, PerformResult{
		PerformTime: txn.PerformTime,
		Transaction: txn.ID,
		State:       int(txn.State),
	})
}

func (w *Webhook) cancel(ctx context.Context, req RPCRequest) RPCResponse {
	var params CancelParams
	if err := json.Unmarshal(req.Params, &params); err != nil || params.ID == "" {
		return errorResponse(req.ID, CodeParseError, "invalid CancelTransaction params")
	}

	txn, resp, ok := w.load(ctx, req, params.ID)
	if !ok {
		return resp
	}

	if txn.State == entities.TransactionStateCreated || txn.State == entities.TransactionStateCompleted {
		txn.Cancel(w.now(), params.Reason)
		if err := w.store.Save(ctx, txn); err != nil {
			log.Printf("[payme][webhook] store save failed id=%s err=%v", txn.ID, err)
			return errorResponse(req.ID, CodeSystemError, "system error")
		}
		log.Printf("[payme][webhook] transaction cancelled id=%s state=%d reason=%d", txn.ID, txn.State, params.Reason)
	}

	return resultResponse(req.ID, CancelResult{
		CancelTime:  txn.CancelTime,
		Transaction: txn.ID,
		State:       int(txn.State),
	})
}

func (w *Webhook) check(ctx context.Context, req RPCRequest) RPCResponse {
	var params CheckParams
	if err := json.Unmarshal(req.Params, &params); err != nil || params.ID == "" {
		return errorResponse(req.ID, CodeParseError, "invalid CheckTransaction params")
	}

	txn, resp, ok := w.load(ctx, req, params.ID)
	if !ok {
		return resp
	}

	return resultResponse(req.ID, CheckResult{
		CreateTime:  txn.CreateTime,
		PerformTime: txn.PerformTime,
		CancelTime:  txn.CancelTime,
		Transaction: txn.ID,
		State:       int(txn.State),
		Reason:      txn.Reason,
	})
}

func (w *Webhook) statement(ctx context.Context, req RPCRequest) RPCResponse {
	var params StatementParams
	if err := json.Unmarshal(req.Params, &params); err != nil || params.From < 0 || params.To < params.From {
		return errorResponse(req.ID, CodeParseError, "invalid GetStatement params")
	}

	txns, err := w.store.ListByCreatedRange(ctx, params.From, params.To)
	if err != nil {
		log.Printf("[payme][webhook] store list failed from=%d to=%d err=%v", params.From, params.To, err)
		return errorResponse(req.ID, CodeSystemError, "system error")
	}

	entries := make([]StatementEntry, 0, len(txns))
	for _, txn := range txns {
		entries = append(entries, StatementEntry{
			ID:          txn.ID,
			Time:        txn.CreateTime,
			Amount:      txn.Amount,
			Account:     txn.Account,
			CreateTime:  txn.CreateTime,
			PerformTime: txn.PerformTime,
			CancelTime:  txn.CancelTime,
			Transaction: txn.ID,
			State:       int(txn.State),
			Reason:      txn.Reason,
		})
	}
	return resultResponse(req.ID, StatementResult{Transactions: entries})
}

// load fetches a transaction, translating store failures into the protocol's
// error envelopes. ok is false when resp should be returned as-is.
func (w *Webhook) load(ctx context.Context, req RPCRequest, id string) (entities.Transaction, RPCResponse, bool) {
	txn, err := w.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrTransactionNotFound) {
			return entities.Transaction{}, errorResponse(req.ID, CodeTransactionNotFound, "transaction not found"), false
		}
		log.Printf("[payme][webhook] store get failed id=%s err=%v", id, err)
		return entities.Transaction{}, errorResponse(req.ID, CodeSystemError, "system error"), false
	}
	return txn, RPCResponse{}, true
}
