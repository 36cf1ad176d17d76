package model

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

type Payment struct {
	ID          string        `json:"id"`
	OrderNumber string        `json:"order"`
	Amount      float64       `json:"amount"`
	Status      PaymentStatus `json:"status"`
}
