package model

import "errors"

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	ErrInternalServerMessage         = "internal server error"
	ErrInvalidLoginOrPasswordMessage = "invalid login or password"
	ErrUserAlreadyExistMessage       = "user already exists"
	ErrOrdersNotFoundMessage         = "no orders found"
	ErrCartEmptyMessage              = "cart is empty"
	ErrInvalidAmountMessage          = "order amount must be a non-negative number"
	ErrInvalidRoleMessage            = "role must be customer or partner"
	ErrPartnerOnlyMessage            = "partner account required"
	ErrOrderNumberRequiredMessage    = "order number is required"
	ErrInvalidTimestampMessage       = "delivered_at must be a valid timestamp"
	ErrInvalidCartItemMessage        = "cart item must have a product id, a non-negative price and a quantity"
)

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidTimestamp    = errors.New("invalid timestamp")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderNotCancellable = errors.New("order can no longer be cancelled")
)
