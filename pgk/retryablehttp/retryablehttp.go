package retryablehttp

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"
)

type RetryConfig struct {
	MaxRetries int           // attempts after the first one, default 3
	BaseDelay  time.Duration // default 100ms
	MaxDelay   time.Duration // default 5s
	MaxJitter  time.Duration // default 100ms
}

type RetryableClient struct {
	client      *http.Client
	retryConfig RetryConfig
}

func NewRetryableClient(config RetryConfig) *RetryableClient {
	if config.MaxRetries == 0 {
		config.MaxRetries = 3
	}
	if config.BaseDelay == 0 {
		config.BaseDelay = 100 * time.Millisecond
	}
	if config.MaxDelay == 0 {
		config.MaxDelay = 5 * time.Second
	}
	if config.MaxJitter == 0 {
		config.MaxJitter = 100 * time.Millisecond
	}

	return &RetryableClient{
		client:      &http.Client{},
		retryConfig: config,
	}
}

// isRetryable - network errors, 5xx, 429 and 408 are worth another attempt.
func (c *RetryableClient) isRetryable(resp *http.Response, err error) bool {
	if err != nil {
		return true
	}

	if resp == nil {
		return false
	}

	statusCode := resp.StatusCode
	return statusCode == 0 ||
		(statusCode >= 500 && statusCode <= 599) ||
		statusCode == http.StatusTooManyRequests ||
		statusCode == http.StatusRequestTimeout
}

func (c *RetryableClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	for attempt := 0; attempt <= c.retryConfig.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		// Rewind the body before a retry, the previous attempt consumed it.
		if attempt > 0 && req.GetBody != nil {
			body, bodyErr := req.GetBody()
			if bodyErr != nil {
				return nil, bodyErr
			}
			req.Body = body
		}

		resp, err = c.client.Do(req)

		if err == nil && !c.isRetryable(resp, nil) {
			return resp, nil
		}

		// Last attempt: hand the response back so the caller can inspect
		// the status (rate limiting needs the Retry-After header).
		if attempt == c.retryConfig.MaxRetries {
			if resp != nil {
				return resp, fmt.Errorf("request failed after %d attempts: %s", attempt+1, resp.Status)
			}
			return nil, fmt.Errorf("request failed after %d attempts: %w", attempt+1, err)
		}

		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}

		delay := c.backoffDelay(attempt)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	return nil, fmt.Errorf("unexpected error")
}

// backoffDelay - exponential growth capped at MaxDelay, plus jitter.
func (c *RetryableClient) backoffDelay(attempt int) time.Duration {
	backoff := time.Duration(1<<uint(attempt)) * c.retryConfig.BaseDelay
	if backoff > c.retryConfig.MaxDelay {
		backoff = c.retryConfig.MaxDelay
	}

	jitter := time.Duration(rand.Int63n(int64(c.retryConfig.MaxJitter)))
	return backoff + jitter
}
