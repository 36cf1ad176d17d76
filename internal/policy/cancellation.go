package policy

import (
	"time"

	"github.com/grocito/grocito/internal/model"
)

const DefaultCancellationWindow = 2 * time.Minute

// CancellationPolicy - gates the client-initiated cancel affordance.
// The authoritative status transition is enforced by storage, this only
// answers whether the cancel request should be allowed through at all.
type CancellationPolicy struct {
	Window time.Duration
}

func DefaultCancellationPolicy() CancellationPolicy {
	return CancellationPolicy{Window: DefaultCancellationWindow}
}

// Check - cancellation eligibility and remaining time for an order at now.
// Unknown statuses are denied rather than propagated. A zero PlacedAt means
// the order record is malformed.
func (p CancellationPolicy) Check(order model.Order, now time.Time) (model.CancellationWindow, error) {
	if order.PlacedAt.IsZero() {
		return model.CancellationWindow{}, model.ErrInvalidTimestamp
	}

	if order.Status != model.OrderStatusPlaced {
		return model.CancellationWindow{}, nil
	}

	elapsed := now.Sub(order.PlacedAt)
	if elapsed > p.Window {
		return model.CancellationWindow{}, nil
	}

	remaining := p.Window - elapsed
	if remaining < 0 {
		remaining = 0
	}

	return model.CancellationWindow{
		CanCancel:            true,
		TimeRemainingSeconds: int(remaining / time.Second),
	}, nil
}

func (p CancellationPolicy) CanCancel(order model.Order, now time.Time) bool {
	window, err := p.Check(order, now)
	if err != nil {
		return false
	}
	return window.CanCancel
}

// TimeRemaining - whole seconds left in the cancellation window, floored,
// never negative. Monotonically non-increasing as now advances.
func (p CancellationPolicy) TimeRemaining(order model.Order, now time.Time) int {
	window, err := p.Check(order, now)
	if err != nil {
		return 0
	}
	return window.TimeRemainingSeconds
}
