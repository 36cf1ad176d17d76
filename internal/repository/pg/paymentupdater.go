package pg

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/grocito/grocito/internal/model"
	"github.com/grocito/grocito/internal/repository/gateway"
)

const paymentPollInterval = 5 * time.Second

// RunPaymentStatusUpdater - periodically reconciles orders whose payment is
// still pending against the gateway. The provider confirms or declines
// asynchronously, so placement records the order with a PENDING payment and
// this loop settles it.
func (r *Repository) RunPaymentStatusUpdater() {
	ticker := time.NewTicker(paymentPollInterval)

	go func() {
		for {
			r.workerPool.pauseMu.Lock()
			if r.workerPool.paused {
				r.workerPool.pauseCond.Wait() // blocked until resume
				r.workerPool.pauseMu.Unlock()
				continue
			}
			r.workerPool.pauseMu.Unlock()

			select {
			case <-ticker.C:
				orders, err := r.getOrdersWithPendingPayment()
				if err != nil {
					r.lg.Errorf("getOrdersWithPendingPayment error: %v", err)
					continue
				}

				if len(orders) > 0 {
					r.workerPool.process(orders, r.worker)
				}
			case <-r.stopPaymentChan:
				ticker.Stop()
				return
			}
		}
	}()
}

func (r *Repository) StopPaymentStatusUpdater() {
	timeout := 4 * time.Second

	if r.stopPaymentChan != nil {
		close(r.stopPaymentChan)
		r.stopPaymentChan = nil
	}

	ctx, cancel := context.WithTimeout(r.shutdownCtx, timeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		r.workerPool.shutdown()
	}()

	select {
	case <-done:
		r.lg.Info("payment updater shutdown completed")
	case <-ctx.Done():
		r.lg.Warn("payment updater force shutdown after timeout")
		r.shutdownCancel()
	}
}

func (r *Repository) worker(ctx context.Context, order model.Order) {
	payment, err := r.gateway.GetPayment(ctx, order.PaymentID)
	if err != nil {
		var rateLimitErr *gateway.RateLimitError
		if errors.As(err, &rateLimitErr) {
			r.workerPool.pausePoolWithTimer(rateLimitErr.RetryAfter)
		}
		r.lg.Errorf("payment status check error: %v", err)
		return
	}

	if payment.Status == model.PaymentStatusPending {
		return
	}

	if err := r.updateOrderPaymentStatus(ctx, order.Number, payment.Status); err != nil {
		r.lg.Errorf("updating payment status error: %v", err)
	}
}

func (r *Repository) getOrdersWithPendingPayment() ([]model.Order, error) {
	result := make([]model.Order, 0)

	err := r.executeWithRetryConnection(func(db *sql.DB) error {
		rows, err := db.Query(`SELECT ` + orderColumns + ` FROM orders WHERE payment_status = 'PENDING'`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			order, err := scanOrder(rows)
			if err != nil {
				return err
			}
			result = append(result, order)
		}

		return rows.Err()
	})
	if err != nil {
		return result, err
	}

	return result, nil
}

// updateOrderPaymentStatus - settles the payment outcome. A declined payment
// also cancels the order, but only while it is still PLACED.
func (r *Repository) updateOrderPaymentStatus(ctx context.Context, orderNumber string, status model.PaymentStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `UPDATE orders SET payment_status = $1 WHERE number = $2`,
		status,
		orderNumber,
	)
	if err != nil {
		return err
	}

	if status == model.PaymentStatusFailed {
		_, err = tx.ExecContext(ctx, `UPDATE orders SET status = $1 WHERE number = $2 AND status = $3`,
			model.OrderStatusCancelled,
			orderNumber,
			model.OrderStatusPlaced,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
