package report

import "fmt"

// NotAuthorizedError is returned when the user lacks permission to run ReportName.
type NotAuthorizedError struct {
	ReportName string
}

func (e *NotAuthorizedError) Error() string {
	return fmt.Sprintf("Not authorised to run report: %s", e.ReportName)
}
