package model

import "strings"

const (
	// ReportListName and ReportListParameterType select the built-in report list query.
	ReportListName          = "."
	ReportListParameterType = "."

	ParameterTypeReport    = "report"
	ParameterTypeParameter = "parameter"

	ReportTypePentaho = "Pentaho"
)

// StretchyReport is a report definition stored in stretchy_report.
type StretchyReport struct {
	ID          int64
	Name        string
	Type        string
	SubType     string
	Category    string
	Description string
	SQL         string
	UseReport   bool
}

// IsPentaho reports whether the report is rendered by the Pentaho server.
func (r StretchyReport) IsPentaho() bool {
	return IsPentahoType(r.Type)
}

// IsPentahoType compares case-insensitively.
func IsPentahoType(reportType string) bool {
	return strings.EqualFold(reportType, ReportTypePentaho)
}

// StretchyParameter is a report parameter definition stored in stretchy_parameter.
type StretchyParameter struct {
	ID       int64
	Name     string
	Variable string
	Label    string
	SQL      string
}
