package click

import (
	"errors"
	"os"
	"strconv"
	"time"

	"paybridge/internal/infrastructure/transport"
)

var (
	ErrMissingMerchantID = errors.New("click: missing merchant id")
	ErrMissingServiceID  = errors.New("click: missing service id")
	ErrMissingSecretKey  = errors.New("click: missing secret key")
)

// Config is the fully-resolved adapter configuration. Resolution from the
// environment happens once at the wiring layer (ConfigFromEnv); the adapter
// itself never reads the environment.
type Config struct {
	MerchantID string
	ServiceID  string
	SecretKey  string
	TestMode   bool

	// APIBaseURL overrides the built-in test/production endpoints.
	// Used for local gateways and in tests.
	APIBaseURL string

	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
}

func (c Config) validate() error {
	if c.MerchantID == "" {
		return ErrMissingMerchantID
	}
	if c.ServiceID == "" {
		return ErrMissingServiceID
	}
	if c.SecretKey == "" {
		return ErrMissingSecretKey
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = transport.DefaultTimeout
	}
	if c.Retries <= 0 {
		c.Retries = transport.DefaultRetries
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = transport.DefaultRetryDelay
	}
	return c
}

// ConfigFromEnv fills unset fields from CLICK_* environment variables.
//
// Supported env vars:
//   - CLICK_MERCHANT_ID, CLICK_SERVICE_ID, CLICK_SECRET_KEY
//   - CLICK_TEST_MODE (otherwise derived from APP_ENV != "production")
//   - CLICK_TIMEOUT_MS, CLICK_RETRIES, CLICK_RETRY_DELAY_MS
func ConfigFromEnv(c Config) Config {
	if c.MerchantID == "" {
		c.MerchantID = os.Getenv("CLICK_MERCHANT_ID")
	}
	if c.ServiceID == "" {
		c.ServiceID = os.Getenv("CLICK_SERVICE_ID")
	}
	if c.SecretKey == "" {
		c.SecretKey = os.Getenv("CLICK_SECRET_KEY")
	}
	if v := os.Getenv("CLICK_TEST_MODE"); v != "" {
		c.TestMode = v == "1" || v == "true"
	} else if os.Getenv("APP_ENV") != "production" {
		c.TestMode = true
	}
	if c.Timeout <= 0 {
		if ms, err := strconv.Atoi(os.Getenv("CLICK_TIMEOUT_MS")); err == nil && ms > 0 {
			c.Timeout = time.Duration(ms) * time.Millisecond
		}
	}
	if c.Retries <= 0 {
		if n, err := strconv.Atoi(os.Getenv("CLICK_RETRIES")); err == nil && n > 0 {
			c.Retries = n
		}
	}
	if c.RetryDelay <= 0 {
		if ms, err := strconv.Atoi(os.Getenv("CLICK_RETRY_DELAY_MS")); err == nil && ms > 0 {
			c.RetryDelay = time.Duration(ms) * time.Millisecond
		}
	}
	return c
}
