package payme

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"paybridge/internal/domain/entities"
	"paybridge/internal/infrastructure/signature"
	"paybridge/internal/infrastructure/transport"
)

const (
	checkoutBaseURL     = "https://checkout.paycom.uz"
	checkoutBaseURLTest = "https://checkout.test.paycom.uz"
	apiURL              = "https://checkout.paycom.uz/api"
	apiURLTest          = "https://checkout.test.paycom.uz/api"

	// minorUnitFactor converts order amounts to the gateway's tiyin
	// accounting on the way out and back.
	minorUnitFactor = 100

	// Reason code sent with merchant-initiated cancellations.
	cancelReasonMerchant = 5
)

// Provider is the RPC-style gateway adapter. Every outbound call goes to a
// single endpoint with the basic-auth token in the Authorization header.
type Provider struct {
	cfg       Config
	client    *transport.Client
	authValue string
	rpcSeq    atomic.Int64
}

func New(cfg Config) (*Provider, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		log.Printf("[payme][gateway] invalid config err=%v", err)
		return nil, err
	}
	return &Provider{
		cfg:       cfg,
		client:    transport.New(cfg.Timeout, cfg.Retries, cfg.RetryDelay),
		authValue: signature.BasicAuthHeader(cfg.Login, cfg.Password),
	}, nil
}

// GeneratePaymentURL encodes the checkout parameters as a URL-safe unpadded
// base64 path segment: m=<merchant>;ac.order_id=<id>;a=<amount>. Pure.
func (p *Provider) GeneratePaymentURL(order entities.PaymentOrder) (string, error) {
	params := []string{
		"m=" + p.cfg.MerchantID,
		"ac.order_id=" + order.ID,
	}

	keys := make([]string, 0, len(order.Extra))
	for k := range order.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		params = append(params, "ac."+k+"="+order.Extra[k])
	}

	params = append(params, "a="+strconv.FormatInt(order.Amount.Value*minorUnitFactor, 10))
	if order.Language != "" {
		params = append(params, "l="+order.Language)
	}
	if order.ReturnURL != "" {
		params = append(params, "c="+order.ReturnURL)
	}

	encoded := base64.RawURLEncoding.EncodeToString([]byte(strings.Join(params, ";")))

	base := checkoutBaseURL
	if p.cfg.TestMode {
		base = checkoutBaseURLTest
	}
	return base + "/" + encoded, nil
}

func (p *Provider) CreatePayment(ctx context.Context, order entities.PaymentOrder) entities.PaymentResult {
	account := map[string]string{"order_id": order.ID}
	for k, v := range order.Extra {
		account[k] = v
	}

	params := CreateParams{
		ID:      order.ID,
		Time:    time.Now().UnixMilli(),
		Amount:  order.Amount.Value * minorUnitFactor,
		Account: account,
	}

	var result CreateResult
	if err := p.rpcCall(ctx, MethodCreateTransaction, params, &result); err != nil {
		log.Printf("[payme][gateway] create failed order_id=%s err=%v", order.ID, err)
		return entities.FailedResult(rpcErrCode(err, entities.ErrCodePaymentCreate), err.Error())
	}

	redirect, _ := p.GeneratePaymentURL(order)
	log.Printf("[payme][gateway] create success order_id=%s transaction=%s", order.ID, result.Transaction)
	return entities.PaymentResult{Success: true, TransactionID: result.Transaction, RedirectURL: redirect}
}

// checkTransactionResult is the outbound CheckTransaction reply; unlike the
// webhook-side CheckResult it may carry the paid amount in minor units.
type checkTransactionResult struct {
	CheckResult
	Amount int64 `json:"amount,omitempty"`
}

func (p *Provider) VerifyPayment(ctx context.Context, transactionID string) entities.PaymentVerifyResult {
	var result checkTransactionResult
	if err := p.rpcCall(ctx, MethodCheckTransaction, CheckParams{ID: transactionID}, &result); err != nil {
		log.Printf("[payme][gateway] verify failed transaction_id=%s err=%v", transactionID, err)
		return entities.FailedVerifyResult(rpcErrCode(err, entities.ErrCodePaymentVerify), err.Error())
	}

	verify := entities.PaymentVerifyResult{
		PaymentResult: entities.PaymentResult{Success: true, TransactionID: transactionID},
		Status:        mapState(result.State),
	}
	if result.Amount > 0 {
		verify.PaidAmount = &entities.Amount{Value: result.Amount / minorUnitFactor}
	}
	if result.PerformTime > 0 {
		paidAt := time.UnixMilli(result.PerformTime).UTC()
		verify.PaidAt = &paidAt
	}
	log.Printf("[payme][gateway] verify success transaction_id=%s status=%s", transactionID, verify.Status)
	return verify
}

func (p *Provider) CancelPayment(ctx context.Context, transactionID string) entities.PaymentResult {
	var result CancelResult
	params := CancelParams{ID: transactionID, Reason: cancelReasonMerchant}
	if err := p.rpcCall(ctx, MethodCancelTransaction, params, &result); err != nil {
		log.Printf("[payme][gateway] cancel failed transaction_id=%s err=%v", transactionID, err)
		return entities.FailedResult(rpcErrCode(err, entities.ErrCodePaymentCancel), err.Error())
	}
	log.Printf("[payme][gateway] cancel success transaction_id=%s state=%d", transactionID, result.State)
	return entities.PaymentResult{Success: true, TransactionID: transactionID}
}

func (p *Provider) rpcCall(ctx context.Context, method Method, params, result any) error {
	rawParams, err := json.Marshal(params)
	if err != nil {
		return err
	}
	body, err := json.Marshal(RPCRequest{
		ID:     p.rpcSeq.Add(1),
		Method: method,
		Params: rawParams,
	})
	if err != nil {
		return err
	}

	endpoint := apiURL
	if p.cfg.TestMode {
		endpoint = apiURLTest
	}
	if p.cfg.APIBaseURL != "" {
		endpoint = p.cfg.APIBaseURL
	}

	headers := map[string]string{"Authorization": p.authValue}
	respBody, status, err := p.client.Post(ctx, endpoint, headers, body)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("payme: unexpected status %d", status)
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
		Error  *RPCError       `json:"error"`
	}
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return err
	}
	if envelope.Error != nil {
		return envelope.Error
	}
	if result != nil && len(envelope.Result) > 0 {
		return json.Unmarshal(envelope.Result, result)
	}
	return nil
}

// mapState converts a transaction state into the unified status enum.
func mapState(state int) entities.PaymentStatus {
	switch entities.TransactionState(state) {
	case entities.TransactionStateCreated:
		return entities.PaymentStatusPending
	case entities.TransactionStateCompleted:
		return entities.PaymentStatusCompleted
	case entities.TransactionStateCancelled, entities.TransactionStateCancelledAfterComplete:
		return entities.PaymentStatusCancelled
	default:
		return entities.PaymentStatusFailed
	}
}

func rpcErrCode(err error, fallback string) string {
	if transport.IsTimeout(err) {
		return entities.ErrCodePaymentTimeout
	}
	return fallback
}
