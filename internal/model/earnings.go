package model

import "time"

type DeliveryType string

const (
	DeliveryTypeFree DeliveryType = "FREE_DELIVERY"
	DeliveryTypePaid DeliveryType = "PAID_DELIVERY"
)

// Bonus names used by the built-in bonus predicates. Callers may pass
// arbitrary additional bonus names, the calculator only sums the values.
const (
	BonusPeakHour = "peak_hour"
	BonusWeekend  = "weekend"
)

// PartnerEarnings - payout breakdown for a single completed delivery.
// Sign convention for PlatformRevenue: negative = platform cost,
// positive = platform margin.
type PartnerEarnings struct {
	OrderAmount     float64            `json:"order_amount"`
	DeliveryType    DeliveryType       `json:"delivery_type"`
	BaseEarnings    float64            `json:"base_earnings"`
	Bonuses         map[string]float64 `json:"bonuses"`
	TotalBonuses    float64            `json:"total_bonuses"`
	TotalEarnings   float64            `json:"total_earnings"`
	CustomerPaid    float64            `json:"customer_paid"`
	PlatformPaid    float64            `json:"platform_paid"`
	PlatformRevenue float64            `json:"platform_revenue"`
}

// Delivery - a completed delivery as recorded by a partner. Earnings are
// recomputed from it on demand, only the raw inputs are stored.
type Delivery struct {
	ID          int64              `json:"id"`
	PartnerID   int64              `json:"-"`
	OrderNumber string             `json:"order"`
	OrderAmount float64            `json:"order_amount"`
	Bonuses     map[string]float64 `json:"bonuses"`
	DeliveredAt time.Time          `json:"delivered_at"`
}

type EarningsSummary struct {
	TotalDeliveries            int     `json:"total_deliveries"`
	FreeDeliveries             int     `json:"free_deliveries"`
	PaidDeliveries             int     `json:"paid_deliveries"`
	TotalEarnings              float64 `json:"total_earnings"`
	TotalBaseEarnings          float64 `json:"total_base_earnings"`
	TotalBonuses               float64 `json:"total_bonuses"`
	AverageEarningsPerDelivery float64 `json:"average_earnings_per_delivery"`
}

// DailyEarnings - summary over one calendar day plus the daily-target bonus.
// The target bonus is included in TotalEarnings but kept out of TotalBonuses
// so per-delivery bonus sums stay reconcilable.
type DailyEarnings struct {
	EarningsSummary
	DailyTargetAchieved       bool    `json:"daily_target_achieved"`
	DailyTargetBonus          float64 `json:"daily_target_bonus"`
	DeliveriesNeededForTarget int     `json:"deliveries_needed_for_target"`
}

type RecordDeliveryDTO struct {
	OrderNumber string             `json:"order"`
	OrderAmount float64            `json:"order_amount"`
	Bonuses     map[string]float64 `json:"bonuses,omitempty"`
	DeliveredAt time.Time          `json:"delivered_at"`
}
