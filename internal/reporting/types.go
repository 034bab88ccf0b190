package reporting

// CurrentUserIDParam is filled from the request scope when the caller did not pass it.
const CurrentUserIDParam = "${currentUserId}"

// ResultsetInput selects the SQL to run. ReportName and ParameterType "." list all reports.
type ResultsetInput struct {
	ReportName    string
	ParameterType string
	// Params maps "${name}" placeholders to values.
	Params map[string]string
}

type PentahoInput struct {
	ReportName string
	OutputType string
	// Params maps Pentaho parameter names (no R_ prefix, no ${}) to values.
	Params map[string]string
}

type EvictReportTypesInput struct {
	ReportName string
}
