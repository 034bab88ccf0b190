package repository

import (
	"time"

	"reporting-srv/internal/model"
)

const (
	ListName          = model.ReportListName
	ListParameterType = model.ReportListParameterType
)

type ResolveSQLOptions struct {
	Name          string
	ParameterType string
}

// QueryOptions is a SQL statement with $n placeholders and its arguments.
type QueryOptions struct {
	SQL  string
	Args []any
}

type StreamQueryOptions struct {
	QueryOptions
	OnHeader func(headers []model.ResultsetColumnHeader) error
	OnRow    func(row model.ResultsetRow) error
}

type SaveReportTypeOptions struct {
	ReportName string
	ReportType string
	TTL        time.Duration
}
