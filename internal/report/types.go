package report

import (
	"net/url"
	"time"

	"reporting-srv/internal/model"
)

// Format is the shape of a report response.
type Format string

const (
	FormatJSON    Format = "json"
	FormatCSV     Format = "csv"
	FormatXLSX    Format = "xlsx"
	FormatPentaho Format = "pentaho"
)

const (
	ContentTypeCSV  = "application/x-msdownload"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	ParameterTypeValueReport    = model.ParameterTypeReport
	ParameterTypeValueParameter = model.ParameterTypeParameter

	ReportListFileName = "ReportList"
)

// Flags are the boolean switches read from the query string.
type Flags struct {
	Pretty        bool
	ExportCSV     bool
	ExportXLSX    bool
	ParameterType bool
}

// Format returns the export format the flags ask for. CSV wins over XLSX.
func (f Flags) Format() Format {
	switch {
	case f.ExportCSV:
		return FormatCSV
	case f.ExportXLSX:
		return FormatXLSX
	default:
		return FormatJSON
	}
}

type ListReportsInput struct {
	Flags Flags
}

type RunReportInput struct {
	ReportName string
	Query      url.Values
	Flags      Flags
}

// ReportOutput is one of a resultset (FormatJSON), a stream (FormatCSV, FormatXLSX)
// or a rendered Pentaho document (FormatPentaho).
type ReportOutput struct {
	Format    Format
	Pretty    bool
	Resultset model.GenericResultset
	Stream    model.StreamingOutput
	// Document carries the content type and disposition of streams, and the body of Pentaho documents.
	Document model.Document
}

// ReportRunEvent is published after every successful dispatch.
type ReportRunEvent struct {
	EventID       string    `json:"event_id"`
	ReportName    string    `json:"report_name"`
	ParameterType string    `json:"parameter_type"`
	Format        Format    `json:"format"`
	OutputType    string    `json:"output_type,omitempty"`
	UserID        string    `json:"user_id"`
	ParamCount    int       `json:"param_count"`
	RanAt         time.Time `json:"ran_at"`
}

type EvictCachesInput struct {
	// ReportName evicts a single report type when set; otherwise every cached type.
	ReportName string
	// UserID evicts one user's permissions when set; otherwise every cached permission list.
	UserID int64
}

type EvictCachesOutput struct {
	ReportTypes int
	Permissions int
}
