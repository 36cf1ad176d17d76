package model

import "time"

type OrderStatus string

const (
	OrderStatusPlaced         OrderStatus = "PLACED"
	OrderStatusConfirmed      OrderStatus = "CONFIRMED"
	OrderStatusPacked         OrderStatus = "PACKED"
	OrderStatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

type Order struct {
	UserID        int64         `json:"-"`
	Number        string        `json:"number"`
	Amount        float64       `json:"amount"`
	DeliveryFee   float64       `json:"delivery_fee"`
	TotalAmount   float64       `json:"total_amount"`
	FreeDelivery  bool          `json:"free_delivery"`
	Status        OrderStatus   `json:"status"`
	PaymentID     string        `json:"-"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PlacedAt      time.Time     `json:"placed_at"`
}

// CancellationWindow - derived fact, recomputed on every request, never stored.
type CancellationWindow struct {
	CanCancel            bool `json:"can_cancel"`
	TimeRemainingSeconds int  `json:"time_remaining_seconds"`
}
