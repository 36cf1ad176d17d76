package pg

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/grocito/grocito/internal/model"
	"github.com/grocito/grocito/internal/repository/gateway"
)

type stubGateway struct {
	payment *model.Payment
	err     error
}

func (s *stubGateway) GetPayment(ctx context.Context, paymentID string) (*model.Payment, error) {
	return s.payment, s.err
}

func newUpdaterRepository(t *testing.T, gw PaymentGateway) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &Repository{
		db:         db,
		lg:         zap.NewNop().Sugar(),
		classifier: NewPostgresErrorClassifier(),
		gateway:    gw,
		workerPool: NewWorkerPool(),
	}, mock
}

func TestRepository_getOrdersWithPendingPayment(t *testing.T) {
	repo, mock := newUpdaterRepository(t, &stubGateway{})

	placedAt := time.Now()
	rows := sqlmock.NewRows([]string{
		"user_id", "number", "amount", "delivery_fee", "total_amount",
		"free_delivery", "status", "payment_id", "payment_status", "placed_at",
	}).AddRow(int64(123), "order-1", 150.0, 40.0, 190.0, false, "PLACED", "pay-1", "PENDING", placedAt)

	mock.ExpectQuery("SELECT (.+) FROM orders WHERE payment_status = 'PENDING'").
		WillReturnRows(rows)

	orders, err := repo.getOrdersWithPendingPayment()

	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, "pay-1", orders[0].PaymentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_updateOrderPaymentStatus_Paid(t *testing.T) {
	repo, mock := newUpdaterRepository(t, &stubGateway{})

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET payment_status = \\$1 WHERE number = \\$2").
		WithArgs("PAID", "order-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.updateOrderPaymentStatus(context.Background(), "order-1", model.PaymentStatusPaid)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_updateOrderPaymentStatus_FailedCancelsOrder(t *testing.T) {
	repo, mock := newUpdaterRepository(t, &stubGateway{})

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET payment_status = \\$1 WHERE number = \\$2").
		WithArgs("FAILED", "order-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE orders SET status = \\$1 WHERE number = \\$2 AND status = \\$3").
		WithArgs("CANCELLED", "order-1", "PLACED").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.updateOrderPaymentStatus(context.Background(), "order-1", model.PaymentStatusFailed)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_worker_PendingPaymentLeavesOrderAlone(t *testing.T) {
	repo, mock := newUpdaterRepository(t, &stubGateway{
		payment: &model.Payment{ID: "pay-1", Status: model.PaymentStatusPending},
	})

	repo.worker(context.Background(), model.Order{Number: "order-1", PaymentID: "pay-1"})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_worker_PaidPaymentSettlesOrder(t *testing.T) {
	repo, mock := newUpdaterRepository(t, &stubGateway{
		payment: &model.Payment{ID: "pay-1", Status: model.PaymentStatusPaid},
	})

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET payment_status = \\$1 WHERE number = \\$2").
		WithArgs("PAID", "order-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo.worker(context.Background(), model.Order{Number: "order-1", PaymentID: "pay-1"})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_worker_RateLimitPausesPool(t *testing.T) {
	repo, _ := newUpdaterRepository(t, &stubGateway{
		err: &gateway.RateLimitError{RetryAfter: time.Minute},
	})

	repo.worker(context.Background(), model.Order{Number: "order-1", PaymentID: "pay-1"})

	repo.workerPool.pauseMu.Lock()
	assert.True(t, repo.workerPool.paused)
	repo.workerPool.pauseMu.Unlock()
}
