package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/grocito/grocito/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreatePayment_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/payments", r.URL.Path)

		var opts CreateOptions
		require.NoError(t, json.NewDecoder(r.Body).Decode(&opts))
		assert.Equal(t, "order-1", opts.OrderNumber)
		assert.Equal(t, 239.0, opts.Amount)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(model.Payment{
			ID:          "pay-1",
			OrderNumber: opts.OrderNumber,
			Amount:      opts.Amount,
			Status:      model.PaymentStatusPending,
		})
	}))
	defer server.Close()

	client := New(server.URL)

	payment, err := client.CreatePayment(context.Background(), CreateOptions{
		OrderNumber: "order-1",
		Amount:      239,
	})

	require.NoError(t, err)
	assert.Equal(t, "pay-1", payment.ID)
	assert.Equal(t, model.PaymentStatusPending, payment.Status)
}

func TestClient_GetPayment_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payments/pay-1", r.URL.Path)

		json.NewEncoder(w).Encode(model.Payment{ID: "pay-1", Status: model.PaymentStatusPaid})
	}))
	defer server.Close()

	client := New(server.URL)

	payment, err := client.GetPayment(context.Background(), "pay-1")

	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPaid, payment.Status)
}

func TestClient_GetPayment_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := New(server.URL)

	_, err := client.GetPayment(context.Background(), "missing")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "payment request failed")
}

func TestClient_GetPayment_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := New(server.URL)

	_, err := client.GetPayment(context.Background(), "pay-1")

	var rateLimitErr *RateLimitError
	require.True(t, errors.As(err, &rateLimitErr))
	assert.Equal(t, 30*time.Second, rateLimitErr.RetryAfter)
}

func TestGetRetryAfter_Default(t *testing.T) {
	resp := &http.Response{Header: http.Header{}}

	assert.Equal(t, 60*time.Second, getRetryAfter(resp))
}

func TestGetRetryAfter_FromHeader(t *testing.T) {
	resp := &http.Response{Header: http.Header{"Retry-After": []string{"15"}}}

	assert.Equal(t, 15*time.Second, getRetryAfter(resp))
}
