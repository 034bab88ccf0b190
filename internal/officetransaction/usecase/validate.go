package usecase

import (
	"strings"
	"unicode/utf8"

	"reporting-srv/internal/officetransaction"
)

const (
	currencyCodeLen   = 3
	maxCurrencyDigits = 6
	maxDescriptionLen = 100
)

func validateCreate(input officetransaction.CreateInput) error {
	if !isCurrencyCode(input.CurrencyCode) {
		return officetransaction.ErrInvalidCurrency
	}
	if input.CurrencyDigits != nil && (*input.CurrencyDigits < 0 || *input.CurrencyDigits > maxCurrencyDigits) {
		return officetransaction.ErrInvalidDigits
	}
	if input.Amount <= 0 {
		return officetransaction.ErrInvalidAmount
	}
	if input.FromOfficeID == nil && input.ToOfficeID == nil {
		return officetransaction.ErrOfficeRequired
	}
	if input.FromOfficeID != nil && input.ToOfficeID != nil && *input.FromOfficeID == *input.ToOfficeID {
		return officetransaction.ErrSameOffice
	}
	if input.TransactionDate.IsZero() {
		return officetransaction.ErrDateRequired
	}
	if utf8.RuneCountInString(input.Description) > maxDescriptionLen {
		return officetransaction.ErrDescriptionTooLong
	}
	return nil
}

func validateList(input officetransaction.ListInput) error {
	if input.CurrencyCode != "" && !isCurrencyCode(input.CurrencyCode) {
		return officetransaction.ErrInvalidCurrency
	}
	if input.DateFrom != nil && input.DateTo != nil && input.DateFrom.After(*input.DateTo) {
		return officetransaction.ErrInvalidDateRange
	}
	return nil
}

// isCurrencyCode accepts three ASCII letters in either case.
func isCurrencyCode(code string) bool {
	if len(code) != currencyCodeLen {
		return false
	}
	for _, r := range strings.ToUpper(code) {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
