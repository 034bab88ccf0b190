package http

import (
	"errors"
	"net/http"

	"reporting-srv/internal/appuser"
	"reporting-srv/internal/report"
	"reporting-srv/internal/reporting"
	pkgErrors "reporting-srv/pkg/errors"
)

var (
	errUnauthenticated       = pkgErrors.NewHTTPError(http.StatusUnauthorized, "User is not authenticated")
	errReportNotFound        = pkgErrors.NewHTTPError(http.StatusNotFound, "Report not found")
	errParameterNotFound     = pkgErrors.NewHTTPError(http.StatusNotFound, "Report parameter not found")
	errInvalidParameterType  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid parameter type")
	errReportHasNoSQL        = pkgErrors.NewHTTPError(http.StatusBadRequest, "Report has no SQL to run")
	errUnsupportedOutputType = pkgErrors.NewHTTPError(http.StatusBadRequest, "Unsupported output-type, use PDF, XLS, CSV or HTML")
	errPentahoFailed         = pkgErrors.NewHTTPError(http.StatusBadGateway, "Pentaho report rendering failed")
	errQueryFailed           = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Report query failed")
	errStreamFailed          = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Report export failed")
	errInvalidEvictRequest   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid cache eviction request")
	errEvictFailed           = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Cache eviction failed")

	errNegativeUserID = errors.New("user_id must not be negative")
)

func (h *handler) mapError(err error) error {
	var notAuthorized *report.NotAuthorizedError
	if errors.As(err, &notAuthorized) {
		return pkgErrors.NewHTTPError(http.StatusForbidden, notAuthorized.Error())
	}

	var missing *reporting.MissingParameterError
	if errors.As(err, &missing) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Missing value for report parameter: "+missing.Name)
	}

	switch {
	case errors.Is(err, appuser.ErrUnauthenticated), errors.Is(err, appuser.ErrUserNotFound):
		return errUnauthenticated
	case errors.Is(err, reporting.ErrReportNotFound):
		return errReportNotFound
	case errors.Is(err, reporting.ErrParameterNotFound):
		return errParameterNotFound
	case errors.Is(err, reporting.ErrInvalidParameterType):
		return errInvalidParameterType
	case errors.Is(err, reporting.ErrReportHasNoSQL):
		return errReportHasNoSQL
	case errors.Is(err, reporting.ErrUnsupportedOutputType):
		return errUnsupportedOutputType
	case errors.Is(err, reporting.ErrPentahoFailed):
		return errPentahoFailed
	case errors.Is(err, reporting.ErrQueryFailed):
		return errQueryFailed
	default:
		panic(err)
	}
}
