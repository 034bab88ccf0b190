package report

import (
	"net/url"
	"strings"
)

const (
	ReportParamPrefix = "R_"

	FlagPretty        = "pretty"
	FlagExportCSV     = "exportCSV"
	FlagExportXLSX    = "exportXLSX"
	FlagParameterType = "parameterType"
	QueryOutputType   = "output-type"
)

// ExtractReportParams collects the R_ prefixed query parameters.
// In Pentaho mode the prefix is dropped, otherwise the name is wrapped as ${name}.
// Only the first value of a key is used. The result is never nil.
func ExtractReportParams(query url.Values, pentahoMode bool) map[string]string {
	params := make(map[string]string)
	for key, values := range query {
		if !strings.HasPrefix(key, ReportParamPrefix) || len(values) == 0 {
			continue
		}
		name := key[len(ReportParamPrefix):]
		if !pentahoMode {
			name = "${" + name + "}"
		}
		params[name] = values[0]
	}
	return params
}

// ParseFlags reads the boolean switches of a report request.
func ParseFlags(query url.Values) Flags {
	return Flags{
		Pretty:        isTrue(query, FlagPretty),
		ExportCSV:     isTrue(query, FlagExportCSV),
		ExportXLSX:    isTrue(query, FlagExportXLSX),
		ParameterType: isTrue(query, FlagParameterType),
	}
}

// isTrue is true iff the first value of key is "true", ignoring case and surrounding space.
func isTrue(query url.Values, key string) bool {
	values, ok := query[key]
	if !ok || len(values) == 0 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(values[0]), "true")
}

// FirstValue returns the first value of key, or "".
func FirstValue(query url.Values, key string) string {
	if values := query[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

// AttachmentDisposition strips spaces from a report name for use in a Content-Disposition filename.
func AttachmentDisposition(reportName, ext string) string {
	return "attachment;filename=" + strings.ReplaceAll(reportName, " ", "") + "." + ext
}
