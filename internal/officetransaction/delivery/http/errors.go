package http

import (
	"errors"
	"net/http"

	"reporting-srv/internal/officetransaction"
	pkgErrors "reporting-srv/pkg/errors"
)

var (
	errWrongBody          = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong body")
	errWrongQuery         = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong query")
	errInvalidID          = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid transaction id")
	errNotFound           = pkgErrors.NewHTTPError(http.StatusNotFound, "Office transaction not found")
	errOfficeNotFound     = pkgErrors.NewHTTPError(http.StatusNotFound, "Office not found")
	errInvalidCurrency    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Currency code must be 3 letters")
	errInvalidDigits      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Currency digits must be between 0 and 6")
	errInvalidAmount      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Transaction amount must be greater than zero")
	errOfficeRequired     = pkgErrors.NewHTTPError(http.StatusBadRequest, "From or to office is required")
	errSameOffice         = pkgErrors.NewHTTPError(http.StatusBadRequest, "From and to office must differ")
	errDateRequired       = pkgErrors.NewHTTPError(http.StatusBadRequest, "Transaction date is required")
	errInvalidDateRange   = pkgErrors.NewHTTPError(http.StatusBadRequest, "date_from must not be after date_to")
	errDescriptionTooLong = pkgErrors.NewHTTPError(http.StatusBadRequest, "Description must be at most 100 characters")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, officetransaction.ErrNotFound):
		return errNotFound
	case errors.Is(err, officetransaction.ErrOfficeNotFound):
		return errOfficeNotFound
	case errors.Is(err, officetransaction.ErrInvalidCurrency):
		return errInvalidCurrency
	case errors.Is(err, officetransaction.ErrInvalidDigits):
		return errInvalidDigits
	case errors.Is(err, officetransaction.ErrInvalidAmount):
		return errInvalidAmount
	case errors.Is(err, officetransaction.ErrOfficeRequired):
		return errOfficeRequired
	case errors.Is(err, officetransaction.ErrSameOffice):
		return errSameOffice
	case errors.Is(err, officetransaction.ErrDateRequired):
		return errDateRequired
	case errors.Is(err, officetransaction.ErrInvalidDateRange):
		return errInvalidDateRange
	case errors.Is(err, officetransaction.ErrDescriptionTooLong):
		return errDescriptionTooLong
	default:
		panic(err)
	}
}
