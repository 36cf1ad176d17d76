package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/grocito/grocito/internal/model"
	"github.com/grocito/grocito/pgk/retryablehttp"
)

// Client - adapter over the payment provider's REST API. The provider's own
// SDK delivers results through callbacks; this client exposes plain
// request/response calls with explicit error returns instead, so order
// placement reads as ordinary sequential code.
type Client struct {
	address     string
	retryClient *retryablehttp.RetryableClient
}

func New(address string) *Client {
	return &Client{
		address:     address,
		retryClient: retryablehttp.NewRetryableClient(retryablehttp.RetryConfig{}),
	}
}

type CreateOptions struct {
	OrderNumber string  `json:"order"`
	Amount      float64 `json:"amount"`
}

// RateLimitError - the provider asked us to back off. RetryAfter comes from
// the Retry-After header, with a 60s default.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
}

func (c *Client) CreatePayment(ctx context.Context, opts CreateOptions) (*model.Payment, error) {
	body, err := json.Marshal(opts)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.address+"/api/payments", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.doPaymentRequest(ctx, req, http.StatusCreated)
}

// GetPayment - current status of a previously created payment.
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*model.Payment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.address+"/api/payments/"+paymentID, nil)
	if err != nil {
		return nil, err
	}

	return c.doPaymentRequest(ctx, req, http.StatusOK)
}

func (c *Client) doPaymentRequest(ctx context.Context, req *http.Request, wantStatus int) (*model.Payment, error) {
	response, err := c.retryClient.Do(ctx, req)
	if err != nil {
		if response != nil && response.StatusCode == http.StatusTooManyRequests {
			retryAfter := getRetryAfter(response)
			response.Body.Close()
			return nil, &RateLimitError{RetryAfter: retryAfter}
		}
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != wantStatus {
		return nil, fmt.Errorf("payment request failed: %s", http.StatusText(response.StatusCode))
	}

	var payment model.Payment
	if err := json.NewDecoder(response.Body).Decode(&payment); err != nil {
		return nil, err
	}

	return &payment, nil
}

func getRetryAfter(resp *http.Response) time.Duration {
	if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
		if seconds, err := strconv.ParseInt(retryAfter, 10, 64); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return 60 * time.Second
}
