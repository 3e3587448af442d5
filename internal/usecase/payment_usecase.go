package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"paybridge/internal/domain/entities"
	"paybridge/internal/usecase/interfaces"
)

var (
	ErrUnknownProvider      = errors.New("unknown payment provider")
	ErrInvalidAmount        = errors.New("invalid order amount")
	ErrInvalidTransactionID = errors.New("invalid transaction id")
)

// IPaymentUseCase is the merchant-facing orchestration over the registered
// gateway adapters. It only validates inputs and routes by provider tag;
// payment-level failures stay inside the returned result.
type IPaymentUseCase interface {
	Providers() []string
	GeneratePaymentURL(provider string, order entities.PaymentOrder) (string, error)
	CreatePayment(ctx context.Context, provider string, order entities.PaymentOrder) (entities.PaymentResult, error)
	VerifyPayment(ctx context.Context, provider, transactionID string) (entities.PaymentVerifyResult, error)
	CancelPayment(ctx context.Context, provider, transactionID string) (entities.PaymentResult, error)
}

type PaymentUseCase struct {
	providers map[string]interfaces.IPaymentProvider
	intents   interfaces.IPaymentIntentStore
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(providers map[string]interfaces.IPaymentProvider) *PaymentUseCase {
	return &PaymentUseCase{providers: providers}
}

// SetIntentStore enables audit recording of create attempts. Recording is
// best-effort; store failures are logged and never fail the payment.
func (u *PaymentUseCase) SetIntentStore(store interfaces.IPaymentIntentStore) {
	u.intents = store
}

// Providers lists the registered provider tags, sorted for stable output.
func (u *PaymentUseCase) Providers() []string {
	tags := make([]string, 0, len(u.providers))
	for tag := range u.providers {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func (u *PaymentUseCase) provider(tag string) (interfaces.IPaymentProvider, error) {
	p, ok := u.providers[strings.ToLower(strings.TrimSpace(tag))]
	if !ok {
		return nil, ErrUnknownProvider
	}
	return p, nil
}

func (u *PaymentUseCase) GeneratePaymentURL(provider string, order entities.PaymentOrder) (string, error) {
	p, err := u.provider(provider)
	if err != nil {
		return "", err
	}
	if order.Amount.Value <= 0 {
		return "", ErrInvalidAmount
	}
	return p.GeneratePaymentURL(order)
}

func (u *PaymentUseCase) CreatePayment(ctx context.Context, provider string, order entities.PaymentOrder) (entities.PaymentResult, error) {
	p, err := u.provider(provider)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	if order.Amount.Value <= 0 {
		return entities.PaymentResult{}, ErrInvalidAmount
	}
	if order.ID == "" {
		order.ID = uuid.NewString()
		log.Printf("[payment][usecase] assigned order id provider=%s order_id=%s", provider, order.ID)
	}

	log.Printf("[payment][usecase] create start provider=%s order_id=%s amount=%d", provider, order.ID, order.Amount.Value)
	result := p.CreatePayment(ctx, order)
	log.Printf("[payment][usecase] create done provider=%s order_id=%s success=%t", provider, order.ID, result.Success)
	u.recordIntent(ctx, provider, order, result)
	return result, nil
}

func (u *PaymentUseCase) recordIntent(ctx context.Context, provider string, order entities.PaymentOrder, result entities.PaymentResult) {
	if u.intents == nil {
		return
	}

	intent := entities.PaymentIntent{
		ID:            uuid.NewString(),
		Provider:      provider,
		OrderID:       order.ID,
		Amount:        order.Amount.Value,
		Currency:      order.Amount.Currency,
		Success:       result.Success,
		TransactionID: result.TransactionID,
		CreatedAt:     time.Now().UnixMilli(),
	}
	if result.Error != nil {
		intent.ErrorCode = result.Error.Code
	}
	if err := u.intents.Put(ctx, intent); err != nil {
		log.Printf("[payment][usecase] intent record failed provider=%s order_id=%s err=%v", provider, order.ID, err)
	}
}

func (u *PaymentUseCase) VerifyPayment(ctx context.Context, provider, transactionID string) (entities.PaymentVerifyResult, error) {
	p, err := u.provider(provider)
	if err != nil {
		return entities.PaymentVerifyResult{}, err
	}
	if strings.TrimSpace(transactionID) == "" {
		return entities.PaymentVerifyResult{}, ErrInvalidTransactionID
	}

	result := p.VerifyPayment(ctx, transactionID)
	log.Printf("[payment][usecase] verify done provider=%s transaction_id=%s success=%t status=%s", provider, transactionID, result.Success, result.Status)
	return result, nil
}

func (u *PaymentUseCase) CancelPayment(ctx context.Context, provider, transactionID string) (entities.PaymentResult, error) {
	p, err := u.provider(provider)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	if strings.TrimSpace(transactionID) == "" {
		return entities.PaymentResult{}, ErrInvalidTransactionID
	}

	result := p.CancelPayment(ctx, transactionID)
	log.Printf("[payment][usecase] cancel done provider=%s transaction_id=%s success=%t", provider, transactionID, result.Success)
	return result, nil
}
