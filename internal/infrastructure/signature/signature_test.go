package signature

import (
	"encoding/base64"
	"testing"
)

func TestHash(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := Hash("secret", "1", "2", "3")
		b := Hash("secret", "1", "2", "3")
		if a != b {
			t.Fatalf("same inputs produced different digests: %s vs %s", a, b)
		}
	})

	t.Run("order sensitive", func(t *testing.T) {
		a := Hash("secret", "1", "2")
		b := Hash("secret", "2", "1")
		if a == b {
			t.Fatal("field order change did not change the digest")
		}
	})

	t.Run("any single field perturbation changes the digest", func(t *testing.T) {
		fields := []string{"12345", "7", "doc-9", "order_123", "100000", "0", "2023-01-01 10:00:00"}
		base := Hash("secret", fields...)
		for i := range fields {
			perturbed := make([]string, len(fields))
			copy(perturbed, fields)
			perturbed[i] = perturbed[i] + "x"
			if Hash("secret", perturbed...) == base {
				t.Fatalf("perturbing field %d did not change the digest", i)
			}
		}
	})

	t.Run("secret changes the digest", func(t *testing.T) {
		if Hash("secret-a", "1") == Hash("secret-b", "1") {
			t.Fatal("different secrets produced the same digest")
		}
	})

	t.Run("lowercase hex of 128-bit digest", func(t *testing.T) {
		d := Hash("secret", "1")
		if len(d) != 32 {
			t.Fatalf("expected 32 hex chars, got %d", len(d))
		}
		for _, c := range d {
			if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
				t.Fatalf("unexpected digest char %q", c)
			}
		}
	})
}

func TestBasicToken(t *testing.T) {
	token := BasicToken("Paycom", "s3cret")
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("token is not valid base64: %v", err)
	}
	if string(decoded) != "Paycom:s3cret" {
		t.Fatalf("expected Paycom:s3cret, got %s", decoded)
	}

	if got := BasicAuthHeader("Paycom", "s3cret"); got != "Basic "+token {
		t.Fatalf("unexpected header value %q", got)
	}
}
