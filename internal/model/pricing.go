package model

// DeliveryFeeResult - full fee breakdown for a single order amount.
// Derived entirely from the amount and the fee policy, never persisted.
type DeliveryFeeResult struct {
	OrderAmount                 float64 `json:"order_amount"`
	DeliveryFee                 float64 `json:"delivery_fee"`
	FreeDelivery                bool    `json:"free_delivery"`
	TotalAmount                 float64 `json:"total_amount"`
	Savings                     float64 `json:"savings"`
	AmountNeededForFreeDelivery float64 `json:"amount_needed_for_free_delivery"`
}
