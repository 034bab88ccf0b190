package postgre

import (
	"reporting-srv/internal/model"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanOfficeTransaction(s scanner) (model.OfficeTransaction, error) {
	var t model.OfficeTransaction
	err := s.Scan(
		&t.ID,
		&t.FromOfficeID,
		&t.ToOfficeID,
		&t.CurrencyCode,
		&t.CurrencyDigits,
		&t.Amount,
		&t.TransactionDate,
		&t.Description,
		&t.CreatedAt,
	)
	return t, err
}
