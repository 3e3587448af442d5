package click

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"paybridge/internal/domain/entities"
	"paybridge/internal/infrastructure/signature"
	"paybridge/internal/infrastructure/transport"
)

const (
	payBaseURL     = "https://my.click.uz/services/pay"
	payBaseURLTest = "https://test.my.click.uz/services/pay"
	apiBaseURL     = "https://api.click.uz/v2/merchant"
	apiBaseURLTest = "https://test.api.click.uz/v2/merchant"
)

// Provider is the hash-signed gateway adapter. Outbound verify/cancel are
// signed stateless POSTs; payment creation is redirect-only and never calls
// the gateway.
type Provider struct {
	cfg    Config
	client *transport.Client
}

func New(cfg Config) (*Provider, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		log.Printf("[click][gateway] invalid config err=%v", err)
		return nil, err
	}
	return &Provider{
		cfg:    cfg,
		client: transport.New(cfg.Timeout, cfg.Retries, cfg.RetryDelay),
	}, nil
}

// GeneratePaymentURL builds the redirect URL for the hosted payment page.
// Pure: the gateway is not contacted.
func (p *Provider) GeneratePaymentURL(order entities.PaymentOrder) (string, error) {
	base := payBaseURL
	if p.cfg.TestMode {
		base = payBaseURLTest
	}

	q := url.Values{}
	q.Set("service_id", p.cfg.ServiceID)
	q.Set("merchant_id", p.cfg.MerchantID)
	q.Set("amount", strconv.FormatInt(order.Amount.Value, 10))
	q.Set("transaction_param", order.ID)
	if order.ReturnURL != "" {
		q.Set("return_url", order.ReturnURL)
	}

	// Sorted for a stable URL; the gateway does not care about extra order.
	keys := make([]string, 0, len(order.Extra))
	for k := range order.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		q.Set(k, order.Extra[k])
	}

	return base + "?" + q.Encode(), nil
}

func (p *Provider) CreatePayment(_ context.Context, order entities.PaymentOrder) entities.PaymentResult {
	redirect, err := p.GeneratePaymentURL(order)
	if err != nil {
		log.Printf("[click][gateway] create failed order_id=%s err=%v", order.ID, err)
		return entities.FailedResult(entities.ErrCodePaymentCreate, err.Error())
	}
	log.Printf("[click][gateway] create success order_id=%s", order.ID)
	return entities.PaymentResult{Success: true, TransactionID: order.ID, RedirectURL: redirect}
}

type signedRequest struct {
	MerchantID    string `json:"merchant_id"`
	TransactionID string `json:"transaction_id"`
	Timestamp     string `json:"timestamp"`
	Signature     string `json:"signature"`
}

type statusResponse struct {
	ErrorCode     int    `json:"error_code"`
	ErrorNote     string `json:"error_note"`
	PaymentStatus int    `json:"payment_status"`
	PerformTime   int64  `json:"perform_time,omitempty"`
	Amount        int64  `json:"amount,omitempty"`
}

func (p *Provider) VerifyPayment(ctx context.Context, transactionID string) entities.PaymentVerifyResult {
	resp, err := p.signedPost(ctx, "/check_transaction", transactionID)
	if err != nil {
		log.Printf("[click][gateway] verify failed transaction_id=%s err=%v", transactionID, err)
		return entities.FailedVerifyResult(verifyErrCode(err), err.Error())
	}
	if resp.ErrorCode != 0 {
		log.Printf("[click][gateway] verify rejected transaction_id=%s code=%d note=%s", transactionID, resp.ErrorCode, resp.ErrorNote)
		return entities.FailedVerifyResult(entities.ErrCodePaymentVerify, resp.ErrorNote)
	}

	result := entities.PaymentVerifyResult{
		PaymentResult: entities.PaymentResult{Success: true, TransactionID: transactionID},
		Status:        mapStatus(resp.PaymentStatus),
	}
	if resp.Amount > 0 {
		result.PaidAmount = &entities.Amount{Value: resp.Amount}
	}
	if resp.PerformTime > 0 {
		paidAt := time.Unix(resp.PerformTime, 0).UTC()
		result.PaidAt = &paidAt
	}
	log.Printf("[click][gateway] verify success transaction_id=%s status=%s", transactionID, result.Status)
	return result
}

func (p *Provider) CancelPayment(ctx context.Context, transactionID string) entities.PaymentResult {
	resp, err := p.signedPost(ctx, "/cancel_transaction", transactionID)
	if err != nil {
		log.Printf("[click][gateway] cancel failed transaction_id=%s err=%v", transactionID, err)
		return entities.FailedResult(cancelErrCode(err), err.Error())
	}
	if resp.ErrorCode != 0 {
		log.Printf("[click][gateway] cancel rejected transaction_id=%s code=%d note=%s", transactionID, resp.ErrorCode, resp.ErrorNote)
		return entities.FailedResult(entities.ErrCodePaymentCancel, resp.ErrorNote)
	}
	log.Printf("[click][gateway] cancel success transaction_id=%s", transactionID)
	return entities.PaymentResult{Success: true, TransactionID: transactionID}
}

func (p *Provider) signedPost(ctx context.Context, path, transactionID string) (statusResponse, error) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req := signedRequest{
		MerchantID:    p.cfg.MerchantID,
		TransactionID: transactionID,
		Timestamp:     timestamp,
		Signature:     signature.Hash(p.cfg.SecretKey, p.cfg.MerchantID, transactionID, timestamp),
	}

	body, err := json.Marshal(req)
	if err != nil {
		return statusResponse{}, err
	}

	base := apiBaseURL
	if p.cfg.TestMode {
		base = apiBaseURLTest
	}
	if p.cfg.APIBaseURL != "" {
		base = p.cfg.APIBaseURL
	}

	respBody, status, err := p.client.Post(ctx, base+path, nil, body)
	if err != nil {
		return statusResponse{}, err
	}
	if status != http.StatusOK {
		return statusResponse{}, fmt.Errorf("click: unexpected status %d", status)
	}

	var resp statusResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return statusResponse{}, err
	}
	return resp, nil
}

// mapStatus converts the gateway's numeric payment status into the unified
// enum: 1 completed, 0 pending, -1 cancelled, anything else failed.
func mapStatus(raw int) entities.PaymentStatus {
	switch raw {
	case 1:
		return entities.PaymentStatusCompleted
	case 0:
		return entities.PaymentStatusPending
	case -1:
		return entities.PaymentStatusCancelled
	default:
		return entities.PaymentStatusFailed
	}
}

func verifyErrCode(err error) string {
	if transport.IsTimeout(err) {
		return entities.ErrCodePaymentTimeout
	}
	return entities.ErrCodePaymentVerify
}

func cancelErrCode(err error) string {
	if transport.IsTimeout(err) {
		return entities.ErrCodePaymentTimeout
	}
	return entities.ErrCodePaymentCancel
}
