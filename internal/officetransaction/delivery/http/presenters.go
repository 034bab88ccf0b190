package http

import (
	"time"

	"reporting-srv/internal/model"
	"reporting-srv/internal/officetransaction"
	pkgErrors "reporting-srv/pkg/errors"
	"reporting-srv/pkg/paginator"
	"reporting-srv/pkg/response"
)

type createReq struct {
	FromOfficeID    *int64  `json:"from_office_id"`
	ToOfficeID      *int64  `json:"to_office_id"`
	CurrencyCode    string  `json:"currency_code" binding:"required"`
	CurrencyDigits  *int    `json:"currency_digits"`
	Amount          float64 `json:"transaction_amount" binding:"required"`
	TransactionDate string  `json:"transaction_date" binding:"required"`
	Description     string  `json:"description"`

	date time.Time
}

func (r *createReq) validate() error {
	d, err := time.Parse(response.DateFormat, r.TransactionDate)
	if err != nil {
		collector := pkgErrors.NewValidationErrorCollector()
		collector.Add("transaction_date", "must be formatted as "+response.DateFormat)
		return collector
	}
	r.date = d
	return nil
}

func (r createReq) toInput() officetransaction.CreateInput {
	return officetransaction.CreateInput{
		FromOfficeID:    r.FromOfficeID,
		ToOfficeID:      r.ToOfficeID,
		CurrencyCode:    r.CurrencyCode,
		CurrencyDigits:  r.CurrencyDigits,
		Amount:          r.Amount,
		TransactionDate: r.date,
		Description:     r.Description,
	}
}

type listReq struct {
	FromOfficeID *int64 `form:"from_office_id"`
	ToOfficeID   *int64 `form:"to_office_id"`
	CurrencyCode string `form:"currency_code"`
	DateFrom     string `form:"date_from"`
	DateTo       string `form:"date_to"`
	paginator.PaginateQuery

	dateFrom, dateTo *time.Time
}

func (r *listReq) validate() error {
	collector := pkgErrors.NewValidationErrorCollector()
	parse := func(field, v string) *time.Time {
		if v == "" {
			return nil
		}
		d, err := time.Parse(response.DateFormat, v)
		if err != nil {
			collector.Add(field, "must be formatted as "+response.DateFormat)
			return nil
		}
		return &d
	}
	r.dateFrom = parse("date_from", r.DateFrom)
	r.dateTo = parse("date_to", r.DateTo)
	if collector.HasError() {
		return collector
	}
	return nil
}

func (r listReq) toInput() officetransaction.ListInput {
	return officetransaction.ListInput{
		FromOfficeID: r.FromOfficeID,
		ToOfficeID:   r.ToOfficeID,
		CurrencyCode: r.CurrencyCode,
		DateFrom:     r.dateFrom,
		DateTo:       r.dateTo,
		Paginate:     r.PaginateQuery,
	}
}

type transactionResp struct {
	ID              int64   `json:"id"`
	FromOfficeID    *int64  `json:"from_office_id"`
	ToOfficeID      *int64  `json:"to_office_id"`
	CurrencyCode    string  `json:"currency_code"`
	CurrencyDigits  int     `json:"currency_digits"`
	Amount          float64 `json:"transaction_amount"`
	TransactionDate string  `json:"transaction_date"`
	Description     *string `json:"description,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type listResp struct {
	Transactions []transactionResp           `json:"transactions"`
	Paginator    paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newTransactionResp(t model.OfficeTransaction) transactionResp {
	return transactionResp{
		ID:              t.ID,
		FromOfficeID:    t.FromOfficeID.Ptr(),
		ToOfficeID:      t.ToOfficeID.Ptr(),
		CurrencyCode:    t.CurrencyCode,
		CurrencyDigits:  t.CurrencyDigits,
		Amount:          t.Amount,
		TransactionDate: t.TransactionDate.Format(response.DateFormat),
		Description:     t.Description.Ptr(),
		CreatedAt:       t.CreatedAt.Format(response.DateTimeFormat),
	}
}

func (h *handler) newListResp(o officetransaction.ListOutput) listResp {
	items := make([]transactionResp, 0, len(o.Transactions))
	for _, t := range o.Transactions {
		items = append(items, h.newTransactionResp(t))
	}
	return listResp{
		Transactions: items,
		Paginator:    o.Paginator.ToResponse(),
	}
}
