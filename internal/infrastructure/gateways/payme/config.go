package payme

import (
	"errors"
	"os"
	"strconv"
	"time"

	"paybridge/internal/infrastructure/transport"
)

var (
	ErrMissingMerchantID = errors.New("payme: missing merchant id")
	ErrMissingPassword   = errors.New("payme: missing password")
)

const defaultLogin = "Paycom"

// Config is the fully-resolved adapter configuration. The adapter never
// reads the environment; ConfigFromEnv is called once at the wiring layer.
type Config struct {
	MerchantID string
	Login      string
	Password   string
	TestMode   bool

	// APIBaseURL overrides the built-in test/production endpoint.
	APIBaseURL string

	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
}

func (c Config) validate() error {
	if c.MerchantID == "" {
		return ErrMissingMerchantID
	}
	if c.Password == "" {
		return ErrMissingPassword
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.Login == "" {
		c.Login = defaultLogin
	}
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

// ConfigFromEnv fills unset fields from PAYME_* environment variables.
//
// Supported env vars:
//   - PAYME_MERCHANT_ID, PAYME_LOGIN, PAYME_PASSWORD
//   - PAYME_TEST_MODE (otherwise derived from APP_ENV != "production")
//   - PAYME_TIMEOUT_MS, PAYME_RETRIES, PAYME_RETRY_DELAY_MS
func ConfigFromEnv(c Config) Config {
	if c.MerchantID == "" {
		c.MerchantID = os.Getenv("PAYME_MERCHANT_ID")
	}
	if c.Login == "" {
		c.Login = os.Getenv("PAYME_LOGIN")
	}
	if c.Password == "" {
		c.Password = os.Getenv("PAYME_PASSWORD")
	}
	if v := os.Getenv("PAYME_TEST_MODE"); v != "" {
		c.TestMode = v == "1" || v == "true"
	} else if os.Getenv("APP_ENV") != "production" {
		c.TestMode = true
	}
	if c.Timeout <= 0 {
		if ms, err := strconv.Atoi(os.Getenv("PAYME_TIMEOUT_MS")); err == nil && ms > 0 {
			c.Timeout = time.Duration(ms) * time.Millisecond
		}
	}
	if c.Retries <= 0 {
		if n, err := strconv.Atoi(os.Getenv("PAYME_RETRIES")); err == nil && n > 0 {
			c.Retries = n
		}
	}
	if c.RetryDelay <= 0 {
		if ms, err := strconv.Atoi(os.Getenv("PAYME_RETRY_DELAY_MS")); err == nil && ms > 0 {
			c.RetryDelay = time.Duration(ms) * time.Millisecond
		}
	}
	return c
}
