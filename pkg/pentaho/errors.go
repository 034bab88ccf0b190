package pentaho

import (
	"errors"
	"fmt"
)

var (
	ErrURLRequired           = errors.New("pentaho: url is required")
	ErrReportNameRequired    = errors.New("pentaho: report name is required")
	ErrUnsupportedOutputType = errors.New("pentaho: unsupported output type")
)

// RequestError is returned when the server answers with a non-2xx status.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("pentaho: server answered %d: %s", e.StatusCode, e.Body)
}
