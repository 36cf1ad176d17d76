package pg

import (
	"errors"

	"github.com/lib/pq"
)

type ErrorClassification int

const (
	NonRetriable ErrorClassification = iota
	Retriable

	ErrIsExistCode = "23505"
)

type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetriable
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classifyPgError(pqErr)
	}

	return NonRetriable
}

// classifyPgError - error codes per
// https://www.postgresql.org/docs/current/errcodes-appendix.html
func classifyPgError(pqErr *pq.Error) ErrorClassification {
	switch pqErr.Code {
	// class 08, connection failures
	case "08000", "08001", "08003", "08004", "08006", "08007":
		return Retriable

	// class 40, transaction rollback
	case "40000", "40001", "40P01":
		return Retriable

	// class 57, operator intervention
	case "57P03":
		return Retriable
	}

	// class 22, data errors
	switch pqErr.Code {
	case "22000", "22004":
		return NonRetriable
	}

	// class 23, integrity constraint violations
	switch pqErr.Code {
	case "23000", "23001", "23502", "23503", ErrIsExistCode, "23514":
		return NonRetriable
	}

	// class 42, syntax errors
	switch pqErr.Code {
	case "42601", "42P01", "42703", "42P02", "42P03":
		return NonRetriable
	}

	return NonRetriable
}
