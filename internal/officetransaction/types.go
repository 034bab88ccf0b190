package officetransaction

import (
	"time"

	"reporting-srv/internal/model"
	"reporting-srv/pkg/paginator"
)

const DefaultCurrencyDigits = 2

type CreateInput struct {
	FromOfficeID    *int64
	ToOfficeID      *int64
	CurrencyCode    string
	CurrencyDigits  *int
	Amount          float64
	TransactionDate time.Time
	Description     string
}

type ListInput struct {
	FromOfficeID *int64
	ToOfficeID   *int64
	CurrencyCode string
	DateFrom     *time.Time
	DateTo       *time.Time
	Paginate     paginator.PaginateQuery
}

type ListOutput struct {
	Transactions []model.OfficeTransaction
	Paginator    paginator.Paginator
}
