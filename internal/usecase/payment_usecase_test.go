package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"paybridge/internal/domain/entities"
	"paybridge/internal/usecase/interfaces"
	mock_interfaces "paybridge/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_ProviderResolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	click := mock_interfaces.NewMockIPaymentProvider(ctrl)
	payme := mock_interfaces.NewMockIPaymentProvider(ctrl)
	uc := NewPaymentUseCase(map[string]interfaces.IPaymentProvider{"click": click, "payme": payme})

	t.Run("lists registered tags sorted", func(t *testing.T) {
		if got := uc.Providers(); !reflect.DeepEqual(got, []string{"click", "payme"}) {
			t.Fatalf("unexpected providers %v", got)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := uc.CreatePayment(context.Background(), "stripe", entities.PaymentOrder{Amount: entities.Amount{Value: 100}})
		if !errors.Is(err, ErrUnknownProvider) {
			t.Fatalf("expected ErrUnknownProvider, got %v", err)
		}
	})

	t.Run("tag is case insensitive", func(t *testing.T) {
		click.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.PaymentResult{Success: true})
		res, err := uc.CreatePayment(context.Background(), " Click ", entities.PaymentOrder{ID: "o1", Amount: entities.Amount{Value: 100}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success {
			t.Fatalf("expected success, got %+v", res)
		}
	})
}

func TestPaymentUseCase_CreatePayment(t *testing.T) {
	t.Run("invalid amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		p := mock_interfaces.NewMockIPaymentProvider(ctrl)
		uc := NewPaymentUseCase(map[string]interfaces.IPaymentProvider{"click": p})

		_, err := uc.CreatePayment(context.Background(), "click", entities.PaymentOrder{ID: "o1"})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("assigns order id when empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		p := mock_interfaces.NewMockIPaymentProvider(ctrl)
		uc := NewPaymentUseCase(map[string]interfaces.IPaymentProvider{"click": p})

		p.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, order entities.PaymentOrder) entities.PaymentResult {
				if order.ID == "" {
					t.Error("expected generated order id")
				}
				return entities.PaymentResult{Success: true, TransactionID: order.ID}
			})

		res, err := uc.CreatePayment(context.Background(), "click", entities.PaymentOrder{Amount: entities.Amount{Value: 100}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success {
			t.Fatalf("expected success, got %+v", res)
		}
	})

	t.Run("provider failure is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		p := mock_interfaces.NewMockIPaymentProvider(ctrl)
		uc := NewPaymentUseCase(map[string]interfaces.IPaymentProvider{"click": p})

		p.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(
			entities.FailedResult(entities.ErrCodePaymentCreate, "gateway down"))

		res, err := uc.CreatePayment(context.Background(), "click", entities.PaymentOrder{ID: "o1", Amount: entities.Amount{Value: 100}})
		if err != nil {
			t.Fatalf("normalized failures must not raise, got %v", err)
		}
		if res.Success || res.Error == nil || res.Error.Code != entities.ErrCodePaymentCreate {
			t.Fatalf("expected normalized failure, got %+v", res)
		}
	})
}

func TestPaymentUseCase_VerifyAndCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	p := mock_interfaces.NewMockIPaymentProvider(ctrl)
	uc := NewPaymentUseCase(map[string]interfaces.IPaymentProvider{"payme": p})

	t.Run("verify requires transaction id", func(t *testing.T) {
		_, err := uc.VerifyPayment(context.Background(), "payme", "  ")
		if !errors.Is(err, ErrInvalidTransactionID) {
			t.Fatalf("expected ErrInvalidTransactionID, got %v", err)
		}
	})

	t.Run("verify routes to provider", func(t *testing.T) {
		p.EXPECT().VerifyPayment(gomock.Any(), "t1").Return(entities.PaymentVerifyResult{
			PaymentResult: entities.PaymentResult{Success: true, TransactionID: "t1"},
			Status:        entities.PaymentStatusCompleted,
		})
		res, err := uc.VerifyPayment(context.Background(), "payme", "t1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PaymentStatusCompleted {
			t.Fatalf("expected completed, got %s", res.Status)
		}
	})

	t.Run("cancel routes to provider", func(t *testing.T) {
		p.EXPECT().CancelPayment(gomock.Any(), "t1").Return(entities.PaymentResult{Success: true, TransactionID: "t1"})
		res, err := uc.CancelPayment(context.Background(), "payme", "t1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success {
			t.Fatalf("expected success, got %+v", res)
		}
	})
}

func TestPaymentUseCase_IntentRecording(t *testing.T) {
	t.Run("records every create attempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		p := mock_interfaces.NewMockIPaymentProvider(ctrl)
		intents := mock_interfaces.NewMockIPaymentIntentStore(ctrl)
		uc := NewPaymentUseCase(map[string]interfaces.IPaymentProvider{"click": p})
		uc.SetIntentStore(intents)

		p.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(
			entities.FailedResult(entities.ErrCodePaymentCreate, "gateway down"))
		intents.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, intent entities.PaymentIntent) error {
				if intent.ID == "" {
					t.Fatal("expected intent id")
				}
				if intent.Provider != "click" || intent.OrderID != "o1" || intent.Amount != 100 {
					t.Fatalf("unexpected intent %+v", intent)
				}
				if intent.Success || intent.ErrorCode != entities.ErrCodePaymentCreate {
					t.Fatalf("expected failed intent, got %+v", intent)
				}
				return nil
			})

		res, err := uc.CreatePayment(context.Background(), "click", entities.PaymentOrder{ID: "o1", Amount: entities.Amount{Value: 100}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Success {
			t.Fatalf("expected failed result, got %+v", res)
		}
	})

	t.Run("store failure does not fail the payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		p := mock_interfaces.NewMockIPaymentProvider(ctrl)
		intents := mock_interfaces.NewMockIPaymentIntentStore(ctrl)
		uc := NewPaymentUseCase(map[string]interfaces.IPaymentProvider{"click": p})
		uc.SetIntentStore(intents)

		p.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.PaymentResult{Success: true, TransactionID: "o1"})
		intents.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("table missing"))

		res, err := uc.CreatePayment(context.Background(), "click", entities.PaymentOrder{ID: "o1", Amount: entities.Amount{Value: 100}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success {
			t.Fatalf("expected success, got %+v", res)
		}
	})
}
