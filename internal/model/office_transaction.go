package model

import (
	"time"

	"github.com/aarondl/null/v8"
)

// OfficeTransaction is a money transfer between two offices. One side may be external.
type OfficeTransaction struct {
	ID              int64       `json:"id"`
	FromOfficeID    null.Int64  `json:"from_office_id"`
	ToOfficeID      null.Int64  `json:"to_office_id"`
	CurrencyCode    string      `json:"currency_code"`
	CurrencyDigits  int         `json:"currency_digits"`
	Amount          float64     `json:"transaction_amount"`
	TransactionDate time.Time   `json:"transaction_date"`
	Description     null.String `json:"description"`
	CreatedAt       time.Time   `json:"created_at"`
}
