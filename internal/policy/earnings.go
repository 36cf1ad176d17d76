package policy

import (
	"math"

	"github.com/grocito/grocito/internal/model"
)

const (
	DefaultFreeDeliveryEarnings  = 25
	DefaultPaidDeliveryEarnings  = 30
	DefaultDailyTargetDeliveries = 12
	DefaultDailyTargetBonus      = 80
	DefaultPeakHourBonus         = 20
	DefaultWeekendBonus          = 15
)

// EarningsPolicy - payout constants for delivery partners.
type EarningsPolicy struct {
	FreeDeliveryEarnings float64
	PaidDeliveryEarnings float64

	DailyTargetDeliveries int
	DailyTargetBonus      float64

	PeakHourBonus float64
	WeekendBonus  float64
}

func DefaultEarningsPolicy() EarningsPolicy {
	return EarningsPolicy{
		FreeDeliveryEarnings:  DefaultFreeDeliveryEarnings,
		PaidDeliveryEarnings:  DefaultPaidDeliveryEarnings,
		DailyTargetDeliveries: DefaultDailyTargetDeliveries,
		DailyTargetBonus:      DefaultDailyTargetBonus,
		PeakHourBonus:         DefaultPeakHourBonus,
		WeekendBonus:          DefaultWeekendBonus,
	}
}

// Calculator - combines the fee and earnings policies into the pure
// calculation engine. Stateless, safe for concurrent use.
type Calculator struct {
	fee        FeePolicy
	earnings   EarningsPolicy
	bonusClock BonusClock
}

func NewCalculator(fee FeePolicy, earnings EarningsPolicy, clock BonusClock) *Calculator {
	return &Calculator{
		fee:        fee,
		earnings:   earnings,
		bonusClock: clock,
	}
}

func (c *Calculator) DeliveryFee(orderAmount float64) (model.DeliveryFeeResult, error) {
	return c.fee.Calculate(orderAmount)
}

// PartnerEarnings - payout for a single delivery. Only the free/paid
// classification of the fee policy matters here, not the full breakdown.
// A nil bonuses map means no bonuses.
func (c *Calculator) PartnerEarnings(orderAmount float64, bonuses map[string]float64) (model.PartnerEarnings, error) {
	if orderAmount < 0 || math.IsNaN(orderAmount) || math.IsInf(orderAmount, 0) {
		return model.PartnerEarnings{}, model.ErrInvalidAmount
	}

	free := c.fee.IsFreeDelivery(orderAmount)

	deliveryType := model.DeliveryTypePaid
	base := c.earnings.PaidDeliveryEarnings
	customerPaid := c.fee.DeliveryFee
	platformPaid := 0.0
	// The platform subsidizes free deliveries out of pocket; on paid
	// deliveries its margin is the fee minus the partner payout.
	platformRevenue := c.fee.DeliveryFee - c.earnings.PaidDeliveryEarnings
	if free {
		deliveryType = model.DeliveryTypeFree
		base = c.earnings.FreeDeliveryEarnings
		customerPaid = 0
		platformPaid = c.earnings.FreeDeliveryEarnings
		platformRevenue = -c.earnings.FreeDeliveryEarnings
	}

	var totalBonuses float64
	for _, amount := range bonuses {
		totalBonuses += amount
	}

	return model.PartnerEarnings{
		OrderAmount:     round2(orderAmount),
		DeliveryType:    deliveryType,
		BaseEarnings:    round2(base),
		Bonuses:         bonuses,
		TotalBonuses:    round2(totalBonuses),
		TotalEarnings:   round2(base + totalBonuses),
		CustomerPaid:    round2(customerPaid),
		PlatformPaid:    round2(platformPaid),
		PlatformRevenue: round2(platformRevenue),
	}, nil
}
