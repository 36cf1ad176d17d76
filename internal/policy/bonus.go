package policy

import (
	"time"

	"github.com/grocito/grocito/internal/model"
)

// BonusClock selects the instant bonus eligibility is evaluated against.
//
// The legacy behavior checks the wall clock at the moment of observation,
// so a delivery completed yesterday evening still counts as peak-hour when
// viewed during today's peak window. Product has not confirmed that this is
// intended, so both interpretations are available and the observed behavior
// stays the default.
type BonusClock string

const (
	BonusClockObservation BonusClock = "observation"
	BonusClockDelivery    BonusClock = "delivery"
)

const (
	peakMorningStart = 7  // [7, 10)
	peakMorningEnd   = 10
	peakEveningStart = 18 // [18, 21)
	peakEveningEnd   = 21
)

// IsPeakHour reports whether t falls inside a peak-hour window, local time.
func IsPeakHour(t time.Time) bool {
	hour := t.Local().Hour()
	return (hour >= peakMorningStart && hour < peakMorningEnd) ||
		(hour >= peakEveningStart && hour < peakEveningEnd)
}

// IsWeekend reports whether t is a Saturday or Sunday, local time.
func IsWeekend(t time.Time) bool {
	day := t.Local().Weekday()
	return day == time.Saturday || day == time.Sunday
}

// ActiveBonuses - bonus mapping for a delivery completed at deliveredAt,
// observed at now. Which of the two instants counts depends on the
// configured BonusClock.
func (c *Calculator) ActiveBonuses(deliveredAt, now time.Time) map[string]float64 {
	at := now
	if c.bonusClock == BonusClockDelivery {
		at = deliveredAt
	}

	bonuses := make(map[string]float64)
	if IsPeakHour(at) {
		bonuses[model.BonusPeakHour] = c.earnings.PeakHourBonus
	}
	if IsWeekend(at) {
		bonuses[model.BonusWeekend] = c.earnings.WeekendBonus
	}

	return bonuses
}
