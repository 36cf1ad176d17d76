package policy

import (
	"time"

	"github.com/grocito/grocito/internal/model"
)

// Summary - folds a sequence of completed deliveries into one summary.
// Deliveries are visited exactly once, in order.
func (c *Calculator) Summary(deliveries []model.Delivery) (model.EarningsSummary, error) {
	var summary model.EarningsSummary

	for _, d := range deliveries {
		earnings, err := c.PartnerEarnings(d.OrderAmount, d.Bonuses)
		if err != nil {
			return model.EarningsSummary{}, err
		}

		summary.TotalDeliveries++
		if earnings.DeliveryType == model.DeliveryTypeFree {
			summary.FreeDeliveries++
		} else {
			summary.PaidDeliveries++
		}

		summary.TotalBaseEarnings += earnings.BaseEarnings
		summary.TotalBonuses += earnings.TotalBonuses
		summary.TotalEarnings += earnings.TotalEarnings
	}

	summary.TotalBaseEarnings = round2(summary.TotalBaseEarnings)
	summary.TotalBonuses = round2(summary.TotalBonuses)
	summary.TotalEarnings = round2(summary.TotalEarnings)

	if summary.TotalDeliveries > 0 {
		summary.AverageEarningsPerDelivery = round2(summary.TotalEarnings / float64(summary.TotalDeliveries))
	}

	return summary, nil
}

// DailySummary - summary over deliveries on the same calendar day as day
// (local time), plus the flat daily-target bonus once the target is hit.
// The target bonus goes into TotalEarnings only, see model.DailyEarnings.
func (c *Calculator) DailySummary(deliveries []model.Delivery, day time.Time) (model.DailyEarnings, error) {
	filtered := make([]model.Delivery, 0, len(deliveries))
	for _, d := range deliveries {
		if sameDay(d.DeliveredAt, day) {
			filtered = append(filtered, d)
		}
	}

	summary, err := c.Summary(filtered)
	if err != nil {
		return model.DailyEarnings{}, err
	}

	daily := model.DailyEarnings{EarningsSummary: summary}
	if summary.TotalDeliveries >= c.earnings.DailyTargetDeliveries {
		daily.DailyTargetAchieved = true
		daily.DailyTargetBonus = c.earnings.DailyTargetBonus
		daily.TotalEarnings = round2(daily.TotalEarnings + c.earnings.DailyTargetBonus)
	} else {
		daily.DeliveriesNeededForTarget = c.earnings.DailyTargetDeliveries - summary.TotalDeliveries
	}

	return daily, nil
}

// WeeklySummary - summary over deliveries within the last 7 days ending at now.
func (c *Calculator) WeeklySummary(deliveries []model.Delivery, now time.Time) (model.EarningsSummary, error) {
	since := now.AddDate(0, 0, -7)

	filtered := make([]model.Delivery, 0, len(deliveries))
	for _, d := range deliveries {
		if !d.DeliveredAt.Before(since) && !d.DeliveredAt.After(now) {
			filtered = append(filtered, d)
		}
	}

	return c.Summary(filtered)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
