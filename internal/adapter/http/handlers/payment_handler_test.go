package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"paybridge/internal/adapter/http/handlers/mocks"
	"paybridge/internal/domain/entities"
	"paybridge/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func paymentRouter(h *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/payments/:provider", h.CreatePayment)
	r.POST("/v1/payments/:provider/url", h.GetPaymentURL)
	r.GET("/v1/payments/:provider/:transaction_id", h.VerifyPayment)
	r.DELETE("/v1/payments/:provider/:transaction_id", h.CancelPayment)
	return r
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/click", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().CreatePayment(gomock.Any(), "stripe", gomock.Any()).Return(entities.PaymentResult{}, usecase.ErrUnknownProvider)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/stripe", bytes.NewBufferString(`{"order_id":"o1","amount":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().CreatePayment(gomock.Any(), "click", gomock.Any()).Return(entities.PaymentResult{
			Success:       true,
			TransactionID: "o1",
			RedirectURL:   "https://pay.example/x",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/click", bytes.NewBufferString(`{"order_id":"o1","amount":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("response is not json: %v", err)
		}
		if body["success"] != true || body["redirect_url"] != "https://pay.example/x" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("gateway failure still responds 200 with normalized error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().CreatePayment(gomock.Any(), "payme", gomock.Any()).Return(
			entities.FailedResult(entities.ErrCodePaymentCreate, "gateway down"), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/payme", bytes.NewBufferString(`{"order_id":"o1","amount":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != false {
			t.Fatalf("expected success false, got %v", body)
		}
	})
}

func TestPaymentHandler_VerifyPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	r := paymentRouter(NewPaymentHandler(uc))

	uc.EXPECT().VerifyPayment(gomock.Any(), "payme", "t1").Return(entities.PaymentVerifyResult{
		PaymentResult: entities.PaymentResult{Success: true, TransactionID: "t1"},
		Status:        entities.PaymentStatusCompleted,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/payments/payme/t1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["status"] != "completed" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestPaymentHandler_GetPaymentURL(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	r := paymentRouter(NewPaymentHandler(uc))

	uc.EXPECT().GeneratePaymentURL("click", gomock.Any()).Return("https://pay.example/checkout", nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/payments/click/url", bytes.NewBufferString(`{"order_id":"o1","amount":100}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["payment_url"] != "https://pay.example/checkout" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestPaymentHandler_CancelPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	r := paymentRouter(NewPaymentHandler(uc))

	uc.EXPECT().CancelPayment(gomock.Any(), "payme", "t1").Return(entities.PaymentResult{Success: true, TransactionID: "t1"}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/payments/payme/t1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
