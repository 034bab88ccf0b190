package officetransaction

import "errors"

var (
	ErrNotFound           = errors.New("office transaction not found")
	ErrOfficeNotFound     = errors.New("office not found")
	ErrInvalidCurrency    = errors.New("currency code must be 3 letters")
	ErrInvalidDigits      = errors.New("currency digits must be between 0 and 6")
	ErrInvalidAmount      = errors.New("transaction amount must be greater than zero")
	ErrOfficeRequired     = errors.New("from or to office is required")
	ErrSameOffice         = errors.New("from and to office must differ")
	ErrDateRequired       = errors.New("transaction date is required")
	ErrInvalidDateRange   = errors.New("date_from must not be after date_to")
	ErrDescriptionTooLong = errors.New("description must be at most 100 characters")
)
