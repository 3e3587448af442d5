package click

import (
	"log"
	"strconv"
	"sync/atomic"
	"time"

	"paybridge/internal/infrastructure/signature"
)

// Webhook actions of the two-phase protocol.
const (
	ActionPrepare  = "0"
	ActionComplete = "1"
)

// WebhookRequest is the inbound callback payload. All values arrive as form
// strings and are kept verbatim because the signature covers the raw text.
type WebhookRequest struct {
	ClickTransID    string `form:"click_trans_id" json:"click_trans_id"`
	ServiceID       string `form:"service_id" json:"service_id"`
	ClickPaydocID   string `form:"click_paydoc_id" json:"click_paydoc_id"`
	MerchantTransID string `form:"merchant_trans_id" json:"merchant_trans_id"`
	Amount          string `form:"amount" json:"amount"`
	Action          string `form:"action" json:"action"`
	Error           string `form:"error" json:"error"`
	ErrorNote       string `form:"error_note" json:"error_note"`
	SignTime        string `form:"sign_time" json:"sign_time"`
	SignString      string `form:"sign_string" json:"sign_string"`
}

// HandleWebhook runs the two-phase callback protocol. It is a pure function
// of the request plus the adapter config: signature check first, then
// dispatch on action. Protocol failures are reported in-body, never raised.
func (p *Provider) HandleWebhook(req WebhookRequest) WebhookResponse {
	if !p.verifyWebhookSignature(req) {
		log.Printf("[click][webhook] signature mismatch click_trans_id=%s merchant_trans_id=%s", req.ClickTransID, req.MerchantTransID)
		return failureResponse(req, codeSignatureFailure, noteSignatureFailure)
	}

	switch req.Action {
	case ActionPrepare:
		return p.handlePrepare(req)
	case ActionComplete:
		return p.handleComplete(req)
	default:
		log.Printf("[click][webhook] unknown action=%q click_trans_id=%s", req.Action, req.ClickTransID)
		return failureResponse(req, codeBadRequest, noteBadRequest)
	}
}

func (p *Provider) handlePrepare(req WebhookRequest) WebhookResponse {
	prepareID := nextCorrelationID()
	log.Printf("[click][webhook] prepare success click_trans_id=%s merchant_trans_id=%s prepare_id=%d", req.ClickTransID, req.MerchantTransID, prepareID)
	return prepareResponse(req, prepareID)
}

func (p *Provider) handleComplete(req WebhookRequest) WebhookResponse {
	// A negative inbound error means the gateway is reporting its own
	// failure; it is passed through unchanged with no state effect.
	if code, err := strconv.Atoi(req.Error); err == nil && code < 0 {
		log.Printf("[click][webhook] complete passthrough click_trans_id=%s error=%d note=%s", req.ClickTransID, code, req.ErrorNote)
		return failureResponse(req, code, req.ErrorNote)
	}

	confirmID := nextCorrelationID()
	log.Printf("[click][webhook] complete success click_trans_id=%s merchant_trans_id=%s confirm_id=%d", req.ClickTransID, req.MerchantTransID, confirmID)
	return confirmResponse(req, confirmID)
}

func (p *Provider) verifyWebhookSignature(req WebhookRequest) bool {
	expected := signature.Hash(p.cfg.SecretKey,
		req.ClickTransID,
		req.ServiceID,
		req.ClickPaydocID,
		req.MerchantTransID,
		req.Amount,
		req.Action,
		req.SignTime,
	)
	return req.SignString == expected
}

// Prepare/confirm ids are correlation identifiers the gateway echoes back on
// the next phase. They are time-derived and strictly increasing so two
// concurrent callbacks can never share one.
var lastCorrelationID int64

func nextCorrelationID() int64 {
	for {
		id := time.Now().UnixMilli()
		last := atomic.LoadInt64(&lastCorrelationID)
		if id <= last {
			id = last + 1
		}
		if atomic.CompareAndSwapInt64(&lastCorrelationID, last, id) {
			return id
		}
	}
}
