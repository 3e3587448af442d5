package click

import (
	"testing"

	"paybridge/internal/infrastructure/signature"
)

func signedWebhookRequest(secret string) WebhookRequest {
	req := WebhookRequest{
		ClickTransID:    "12345",
		ServiceID:       "7",
		ClickPaydocID:   "doc-9",
		MerchantTransID: "order_123",
		Amount:          "100000",
		Action:          ActionPrepare,
		Error:           "0",
		SignTime:        "2023-01-01 10:00:00",
	}
	req.SignString = signature.Hash(secret,
		req.ClickTransID, req.ServiceID, req.ClickPaydocID,
		req.MerchantTransID, req.Amount, req.Action, req.SignTime,
	)
	return req
}

func newWebhookProvider(t *testing.T) *Provider {
	t.Helper()
	p, err := New(testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func TestHandleWebhook_Prepare(t *testing.T) {
	p := newWebhookProvider(t)

	resp := p.HandleWebhook(signedWebhookRequest("secret"))
	if resp.Error != codeSuccess {
		t.Fatalf("expected error 0, got %d (%s)", resp.Error, resp.ErrorNote)
	}
	if resp.MerchantPrepareID == 0 {
		t.Fatal("expected merchant_prepare_id to be set")
	}
	if resp.MerchantConfirmID != 0 {
		t.Fatal("prepare must not set merchant_confirm_id")
	}
	if resp.ClickTransID != "12345" || resp.MerchantTransID != "order_123" {
		t.Fatalf("request ids not echoed: %+v", resp)
	}
}

func TestHandleWebhook_PrepareIDsAreUnique(t *testing.T) {
	p := newWebhookProvider(t)

	seen := make(map[int64]bool)
	for i := 0; i < 100; i++ {
		resp := p.HandleWebhook(signedWebhookRequest("secret"))
		if seen[resp.MerchantPrepareID] {
			t.Fatalf("duplicate prepare id %d", resp.MerchantPrepareID)
		}
		seen[resp.MerchantPrepareID] = true
	}
}

func TestHandleWebhook_Complete(t *testing.T) {
	p := newWebhookProvider(t)

	t.Run("success issues confirm id", func(t *testing.T) {
		req := signedWebhookRequest("secret")
		req.Action = ActionComplete
		req.SignString = signature.Hash("secret",
			req.ClickTransID, req.ServiceID, req.ClickPaydocID,
			req.MerchantTransID, req.Amount, req.Action, req.SignTime,
		)

		resp := p.HandleWebhook(req)
		if resp.Error != codeSuccess {
			t.Fatalf("expected error 0, got %d (%s)", resp.Error, resp.ErrorNote)
		}
		if resp.MerchantConfirmID == 0 {
			t.Fatal("expected merchant_confirm_id to be set")
		}
		if resp.MerchantPrepareID != 0 {
			t.Fatal("complete must not set merchant_prepare_id")
		}
	})

	t.Run("negative gateway error passes through unchanged", func(t *testing.T) {
		req := signedWebhookRequest("secret")
		req.Action = ActionComplete
		req.Error = "-5017"
		req.ErrorNote = "Insufficient funds"
		req.SignString = signature.Hash("secret",
			req.ClickTransID, req.ServiceID, req.ClickPaydocID,
			req.MerchantTransID, req.Amount, req.Action, req.SignTime,
		)

		resp := p.HandleWebhook(req)
		if resp.Error != -5017 {
			t.Fatalf("expected error -5017, got %d", resp.Error)
		}
		if resp.ErrorNote != "Insufficient funds" {
			t.Fatalf("expected note passthrough, got %q", resp.ErrorNote)
		}
		if resp.MerchantConfirmID != 0 || resp.MerchantPrepareID != 0 {
			t.Fatalf("failure response must not carry correlation ids: %+v", resp)
		}
	})
}

func TestHandleWebhook_SignatureFailure(t *testing.T) {
	p := newWebhookProvider(t)

	fields := []func(*WebhookRequest){
		func(r *WebhookRequest) { r.ClickTransID += "x" },
		func(r *WebhookRequest) { r.ServiceID += "x" },
		func(r *WebhookRequest) { r.ClickPaydocID += "x" },
		func(r *WebhookRequest) { r.MerchantTransID += "x" },
		func(r *WebhookRequest) { r.Amount += "1" },
		func(r *WebhookRequest) { r.SignTime += "x" },
		func(r *WebhookRequest) { r.SignString = "deadbeef" },
	}

	for i, mutate := range fields {
		req := signedWebhookRequest("secret")
		mutate(&req)
		resp := p.HandleWebhook(req)
		if resp.Error != codeSignatureFailure {
			t.Fatalf("field %d: expected signature failure, got %d", i, resp.Error)
		}
		if resp.MerchantPrepareID != 0 || resp.MerchantConfirmID != 0 {
			t.Fatalf("field %d: failure response must not carry ids", i)
		}
	}
}

func TestHandleWebhook_UnknownAction(t *testing.T) {
	p := newWebhookProvider(t)

	req := signedWebhookRequest("secret")
	req.Action = "2"
	req.SignString = signature.Hash("secret",
		req.ClickTransID, req.ServiceID, req.ClickPaydocID,
		req.MerchantTransID, req.Amount, req.Action, req.SignTime,
	)

	resp := p.HandleWebhook(req)
	if resp.Error != codeBadRequest {
		t.Fatalf("expected bad request code, got %d", resp.Error)
	}
}
