package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"
)

// Client is the outbound HTTP transport shared by the gateway adapters.
//
// Each request gets a per-attempt timeout; transient failures (timeout,
// network error, 5xx, 429) are retried sequentially with exponential backoff
// (base delay doubled per attempt) up to the configured attempt limit. 4xx
// responses other than 429 are returned immediately.

type Client struct {
	httpClient *http.Client
	retries    int
	retryDelay time.Duration
}

const (
	DefaultTimeout    = 30 * time.Second
	DefaultRetries    = 3
	DefaultRetryDelay = time.Second
)

func New(timeout time.Duration, retries int, retryDelay time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if retries < 0 {
		retries = DefaultRetries
	}
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		retries:    retries,
		retryDelay: retryDelay,
	}
}

// Post sends body to url with the given headers and returns the response
// body and status code. It retries transient failures; the error reports the
// last attempt's outcome once retries are exhausted.
func (c *Client) Post(ctx context.Context, url string, headers map[string]string, body []byte) ([]byte, int, error) {
	var (
		lastErr    error
		lastStatus int
	)

	attempts := c.retries + 1
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := c.retryDelay * (1 << (attempt - 1))
			log.Printf("[transport] retrying url=%s attempt=%d delay=%s", url, attempt, delay)
			select {
			case <-ctx.Done():
				return nil, 0, ctx.Err()
			case <-time.After(delay):
			}
		}

		respBody, status, err := c.post(ctx, url, headers, body)
		if err != nil {
			lastErr = err
			if !isRetryableError(err) {
				return nil, 0, err
			}
			continue
		}
		if isRetryableStatus(status) {
			lastErr = fmt.Errorf("transient status %d from %s", status, url)
			lastStatus = status
			continue
		}
		return respBody, status, nil
	}

	if lastStatus != 0 {
		return nil, lastStatus, lastErr
	}
	return nil, 0, lastErr
}

func (c *Client) post(ctx context.Context, url string, headers map[string]string, body []byte) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return respBody, resp.StatusCode, nil
}

func isRetryableStatus(status int) bool {
	return status >= 500 || status == http.StatusTooManyRequests
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if IsTimeout(err) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// IsTimeout reports whether err was caused by a request timeout, so callers
// can surface the dedicated timeout error code.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
