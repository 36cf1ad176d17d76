package pg

import (
	"database/sql"
	"encoding/json"

	"github.com/grocito/grocito/internal/model"
)

func (r *Repository) CreateDelivery(delivery model.Delivery) error {
	bonuses, err := json.Marshal(delivery.Bonuses)
	if err != nil {
		return err
	}

	return r.executeWithRetryConnection(func(db *sql.DB) error {
		_, err := db.Exec(`INSERT INTO deliveries (partner_id, order_number, order_amount, bonuses, delivered_at) VALUES ($1, $2, $3, $4, $5)`,
			delivery.PartnerID,
			delivery.OrderNumber,
			delivery.OrderAmount,
			bonuses,
			delivery.DeliveredAt,
		)
		return err
	})
}

func (r *Repository) GetDeliveriesByPartnerID(partnerID int64) ([]model.Delivery, error) {
	result := make([]model.Delivery, 0)

	err := r.executeWithRetryConnection(func(db *sql.DB) error {
		rows, err := db.Query(`SELECT id, partner_id, order_number, order_amount, bonuses, delivered_at FROM deliveries WHERE partner_id = $1 ORDER BY delivered_at DESC`, partnerID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var delivery model.Delivery
			var bonuses []byte

			if err := rows.Scan(
				&delivery.ID,
				&delivery.PartnerID,
				&delivery.OrderNumber,
				&delivery.OrderAmount,
				&bonuses,
				&delivery.DeliveredAt,
			); err != nil {
				return err
			}

			if len(bonuses) > 0 {
				if err := json.Unmarshal(bonuses, &delivery.Bonuses); err != nil {
					return err
				}
			}

			result = append(result, delivery)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
