package reporting

import (
	"context"

	"reporting-srv/internal/model"
)

// UseCase is the reporting backend: it resolves report SQL, runs it and renders the result.
//
//go:generate mockery --name UseCase
type UseCase interface {
	RetrieveGenericResultset(ctx context.Context, sc model.Scope, input ResultsetInput) (model.GenericResultset, error)
	// RetrieveReportCSV resolves the query before returning, the stream runs it.
	RetrieveReportCSV(ctx context.Context, sc model.Scope, input ResultsetInput) (model.StreamingOutput, error)
	RetrieveReportXLSX(ctx context.Context, sc model.Scope, input ResultsetInput) (model.StreamingOutput, error)
	GetReportType(ctx context.Context, reportName string) (string, error)
	ProcessPentahoRequest(ctx context.Context, input PentahoInput) (model.Document, error)
	// EvictReportTypes drops one cached report type, or all of them when input.ReportName is empty.
	EvictReportTypes(ctx context.Context, input EvictReportTypesInput) (int, error)
}
