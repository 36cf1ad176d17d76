package policy

import (
	"math"

	"github.com/grocito/grocito/internal/model"
)

const (
	DefaultFreeDeliveryThreshold = 199
	DefaultDeliveryFee           = 40
)

// FeePolicy - free-delivery threshold rule. One instance is shared by
// everything that prices an order so the constants cannot drift.
type FeePolicy struct {
	FreeDeliveryThreshold float64
	DeliveryFee           float64
}

func DefaultFeePolicy() FeePolicy {
	return FeePolicy{
		FreeDeliveryThreshold: DefaultFreeDeliveryThreshold,
		DeliveryFee:           DefaultDeliveryFee,
	}
}

func (p FeePolicy) IsFreeDelivery(orderAmount float64) bool {
	return orderAmount >= p.FreeDeliveryThreshold
}

// Calculate - full fee breakdown for the given order amount.
// Rejects negative amounts, everything else is a valid input.
func (p FeePolicy) Calculate(orderAmount float64) (model.DeliveryFeeResult, error) {
	if orderAmount < 0 || math.IsNaN(orderAmount) || math.IsInf(orderAmount, 0) {
		return model.DeliveryFeeResult{}, model.ErrInvalidAmount
	}

	free := p.IsFreeDelivery(orderAmount)

	fee := p.DeliveryFee
	savings := 0.0
	needed := p.FreeDeliveryThreshold - orderAmount
	if free {
		fee = 0
		savings = p.DeliveryFee
		needed = 0
	}
	if needed < 0 {
		needed = 0
	}

	return model.DeliveryFeeResult{
		OrderAmount:                 round2(orderAmount),
		DeliveryFee:                 round2(fee),
		FreeDelivery:                free,
		TotalAmount:                 round2(orderAmount + fee),
		Savings:                     round2(savings),
		AmountNeededForFreeDelivery: round2(needed),
	}, nil
}

// round2 - half-up rounding to 2 decimal places. Amounts are never negative
// here, so rounding half away from zero is the same thing.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
