package pg

import (
	"database/sql"
	"errors"

	"github.com/grocito/grocito/internal/model"
)

const orderColumns = `user_id, number, amount, delivery_fee, total_amount, free_delivery, status, payment_id, payment_status, placed_at`

func (r *Repository) CreateOrder(order model.Order) error {
	return r.executeWithRetryConnection(func(db *sql.DB) error {
		_, err := db.Exec(`INSERT INTO orders (`+orderColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			order.UserID,
			order.Number,
			order.Amount,
			order.DeliveryFee,
			order.TotalAmount,
			order.FreeDelivery,
			order.Status,
			order.PaymentID,
			order.PaymentStatus,
			order.PlacedAt,
		)
		return err
	})
}

func (r *Repository) GetOrdersByUserID(userID int64) ([]model.Order, error) {
	result := make([]model.Order, 0)

	err := r.executeWithRetryConnection(func(db *sql.DB) error {
		rows, err := db.Query(`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY placed_at DESC`, userID)
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
		return nil, err
	}

	return result, nil
}

func (r *Repository) GetOrderByNumber(userID int64, number string) (*model.Order, error) {
	var order model.Order

	err := r.executeWithRetryConnection(func(db *sql.DB) error {
		row := db.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 AND number = $2`, userID, number)
		return row.Scan(
			&order.UserID,
			&order.Number,
			&order.Amount,
			&order.DeliveryFee,
			&order.TotalAmount,
			&order.FreeDelivery,
			&order.Status,
			&order.PaymentID,
			&order.PaymentStatus,
			&order.PlacedAt,
		)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrOrderNotFound
		}
		return nil, err
	}

	return &order, nil
}

// CancelOrder - storage-side guard for the cancellation transition: only a
// PLACED order flips to CANCELLED, anything else is rejected.
func (r *Repository) CancelOrder(userID int64, number string) error {
	return r.executeWithRetryConnection(func(db *sql.DB) error {
		result, err := db.Exec(`UPDATE orders SET status = $1 WHERE user_id = $2 AND number = $3 AND status = $4`,
			model.OrderStatusCancelled,
			userID,
			number,
			model.OrderStatusPlaced,
		)
		if err != nil {
			return err
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return model.ErrOrderNotCancellable
		}

		return nil
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (model.Order, error) {
	var order model.Order
	err := row.Scan(
		&order.UserID,
		&order.Number,
		&order.Amount,
		&order.DeliveryFee,
		&order.TotalAmount,
		&order.FreeDelivery,
		&order.Status,
		&order.PaymentID,
		&order.PaymentStatus,
		&order.PlacedAt,
	)
	return order, err
}
