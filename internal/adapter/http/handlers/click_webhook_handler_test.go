package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"paybridge/internal/infrastructure/gateways/click"
	"paybridge/internal/infrastructure/signature"

	"github.com/gin-gonic/gin"
)

func clickTestProvider(t *testing.T) *click.Provider {
	t.Helper()
	p, err := click.New(click.Config{
		MerchantID: "11111",
		ServiceID:  "22222",
		SecretKey:  "topsecret",
		TestMode:   true,
	})
	if err != nil {
		t.Fatalf("provider: %v", err)
	}
	return p
}

func signedClickForm(secret string) url.Values {
	v := url.Values{}
	v.Set("click_trans_id", "900001")
	v.Set("service_id", "22222")
	v.Set("click_paydoc_id", "700001")
	v.Set("merchant_trans_id", "order_42")
	v.Set("amount", "1500.00")
	v.Set("action", click.ActionPrepare)
	v.Set("error", "0")
	v.Set("error_note", "Success")
	v.Set("sign_time", "2024-05-01 10:00:00")
	v.Set("sign_string", signature.Hash(secret,
		v.Get("click_trans_id"), v.Get("service_id"), v.Get("click_paydoc_id"),
		v.Get("merchant_trans_id"), v.Get("amount"), v.Get("action"), v.Get("sign_time")))
	return v
}

func TestClickWebhookHandler_Handle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	h := NewClickWebhookHandler(clickTestProvider(t))
	r.POST("/v1/webhooks/click", h.Handle)

	t.Run("prepare returns 200 with prepare id", func(t *testing.T) {
		form := signedClickForm("topsecret")
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/click", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("response is not json: %v", err)
		}
		if body["error"] != float64(0) {
			t.Fatalf("expected error 0, got %v", body["error"])
		}
		if body["merchant_trans_id"] != "order_42" {
			t.Fatalf("unexpected merchant_trans_id %v", body["merchant_trans_id"])
		}
		if _, ok := body["merchant_prepare_id"]; !ok {
			t.Fatal("expected merchant_prepare_id in response")
		}
	})

	t.Run("bad signature still returns 200 with error in body", func(t *testing.T) {
		form := signedClickForm("wrongsecret")
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/click", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != float64(-1) {
			t.Fatalf("expected error -1, got %v", body["error"])
		}
	})
}
