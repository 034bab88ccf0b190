package repository

import (
	"time"

	"github.com/aarondl/null/v8"
)

type CreateOptions struct {
	FromOfficeID    null.Int64
	ToOfficeID      null.Int64
	CurrencyCode    string
	CurrencyDigits  int
	Amount          float64
	TransactionDate time.Time
	Description     null.String
}

type ListOptions struct {
	FromOfficeID null.Int64
	ToOfficeID   null.Int64
	CurrencyCode string
	DateFrom     null.Time
	DateTo       null.Time
	Limit        int64
	Offset       int64
}
