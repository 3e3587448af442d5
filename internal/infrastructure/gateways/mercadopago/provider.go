package mercadopago

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"

	"paybridge/internal/domain/entities"
	"paybridge/internal/infrastructure/transport"
)

var (
	ErrMissingAccessToken = errors.New("mercadopago: missing access token")

	// ErrRedirectRequiresCreate is returned by GeneratePaymentURL: this
	// gateway only hands out a checkout URL as part of payment creation.
	ErrRedirectRequiresCreate = errors.New("mercadopago: redirect url is only available from CreatePayment")
)

// Provider adapts the vendor SDK to the unified provider contract, so a
// card gateway can sit next to the regional ones without the orchestration
// layer noticing. Amounts are treated as cents and scaled to the SDK's
// major-unit float on the way out.
type Provider struct {
	client payment.Client
}

func New(accessToken string) (*Provider, error) {
	if accessToken == "" {
		log.Printf("[mercadopago][gateway] missing access token")
		return nil, ErrMissingAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[mercadopago][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[mercadopago][gateway] client initialized")
	return &Provider{client: payment.NewClient(cfg)}, nil
}

func (p *Provider) GeneratePaymentURL(_ entities.PaymentOrder) (string, error) {
	return "", ErrRedirectRequiresCreate
}

func (p *Provider) CreatePayment(ctx context.Context, order entities.PaymentOrder) entities.PaymentResult {
	req := payment.Request{
		TransactionAmount: float64(order.Amount.Value) / 100,
		Description:       order.Description,
		ExternalReference: order.ID,
	}
	if method, ok := order.Extra["payment_method_id"]; ok {
		req.PaymentMethodID = method
	}
	if email, ok := order.Extra["payer_email"]; ok {
		req.Payer = &payment.PayerRequest{Email: email}
	}

	resp, err := p.client.Create(ctx, req)
	if err != nil {
		log.Printf("[mercadopago][gateway] create failed order_id=%s err=%v", order.ID, err)
		return entities.FailedResult(errCode(err, entities.ErrCodePaymentCreate), err.Error())
	}

	log.Printf("[mercadopago][gateway] create success order_id=%s provider_payment_id=%d status=%s", order.ID, resp.ID, resp.Status)
	return entities.PaymentResult{Success: true, TransactionID: strconv.Itoa(resp.ID)}
}

func (p *Provider) VerifyPayment(ctx context.Context, transactionID string) entities.PaymentVerifyResult {
	id, err := strconv.Atoi(transactionID)
	if err != nil {
		return entities.FailedVerifyResult(entities.ErrCodePaymentVerify, "invalid transaction id")
	}

	resp, err := p.client.Get(ctx, id)
	if err != nil {
		log.Printf("[mercadopago][gateway] verify failed transaction_id=%s err=%v", transactionID, err)
		return entities.FailedVerifyResult(errCode(err, entities.ErrCodePaymentVerify), err.Error())
	}

	result := entities.PaymentVerifyResult{
		PaymentResult: entities.PaymentResult{Success: true, TransactionID: transactionID},
		Status:        mapStatus(resp.Status),
	}
	if resp.TransactionAmount > 0 {
		result.PaidAmount = &entities.Amount{Value: int64(resp.TransactionAmount * 100)}
	}
	log.Printf("[mercadopago][gateway] verify success transaction_id=%s status=%s", transactionID, result.Status)
	return result
}

func (p *Provider) CancelPayment(ctx context.Context, transactionID string) entities.PaymentResult {
	id, err := strconv.Atoi(transactionID)
	if err != nil {
		return entities.FailedResult(entities.ErrCodePaymentCancel, "invalid transaction id")
	}

	resp, err := p.client.Cancel(ctx, id)
	if err != nil {
		log.Printf("[mercadopago][gateway] cancel failed transaction_id=%s err=%v", transactionID, err)
		return entities.FailedResult(errCode(err, entities.ErrCodePaymentCancel), err.Error())
	}

	log.Printf("[mercadopago][gateway] cancel success transaction_id=%s status=%s", transactionID, resp.Status)
	return entities.PaymentResult{Success: true, TransactionID: transactionID}
}

func mapStatus(raw string) entities.PaymentStatus {
	switch raw {
	case "approved":
		return entities.PaymentStatusCompleted
	case "pending", "in_process", "authorized":
		return entities.PaymentStatusPending
	case "cancelled", "refunded":
		return entities.PaymentStatusCancelled
	default:
		return entities.PaymentStatusFailed
	}
}

func errCode(err error, fallback string) string {
	if transport.IsTimeout(err) {
		return entities.ErrCodePaymentTimeout
	}
	return fallback
}
