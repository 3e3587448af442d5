package mercadopago

import (
	"errors"
	"testing"

	"paybridge/internal/domain/entities"
)

func TestNew_RequiresAccessToken(t *testing.T) {
	if _, err := New(""); !errors.Is(err, ErrMissingAccessToken) {
		t.Fatalf("expected ErrMissingAccessToken, got %v", err)
	}
}

func TestGeneratePaymentURL_IsNotPureForThisGateway(t *testing.T) {
	p, err := New("TEST-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.GeneratePaymentURL(entities.PaymentOrder{ID: "o1"}); !errors.Is(err, ErrRedirectRequiresCreate) {
		t.Fatalf("expected ErrRedirectRequiresCreate, got %v", err)
	}
}

func TestMapStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want entities.PaymentStatus
	}{
		{"approved", entities.PaymentStatusCompleted},
		{"pending", entities.PaymentStatusPending},
		{"in_process", entities.PaymentStatusPending},
		{"authorized", entities.PaymentStatusPending},
		{"cancelled", entities.PaymentStatusCancelled},
		{"refunded", entities.PaymentStatusCancelled},
		{"rejected", entities.PaymentStatusFailed},
		{"charged_back", entities.PaymentStatusFailed},
	}
	for _, tc := range cases {
		if got := mapStatus(tc.raw); got != tc.want {
			t.Fatalf("status %q: expected %s, got %s", tc.raw, tc.want, got)
		}
	}

	// Idempotence: mapping the same raw status twice yields the same result.
	for _, tc := range cases {
		if mapStatus(tc.raw) != mapStatus(tc.raw) {
			t.Fatalf("mapping %q is not deterministic", tc.raw)
		}
	}
}
