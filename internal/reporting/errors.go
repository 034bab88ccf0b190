package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrReportNotFound        = errors.New("report not found")
	ErrParameterNotFound     = errors.New("report parameter not found")
	ErrInvalidParameterType  = errors.New("invalid parameter type")
	ErrReportHasNoSQL        = errors.New("report has no sql")
	ErrUnsupportedOutputType = errors.New("unsupported output type")
	ErrPentahoFailed         = errors.New("pentaho request failed")
	ErrQueryFailed           = errors.New("report query failed")
)

// MissingParameterError is returned when the report SQL references a placeholder no value was given for.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing value for report parameter %s", e.Name)
}
