package report

import (
	"context"

	"reporting-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	ListReports(ctx context.Context, sc model.Scope, input ListReportsInput) (ReportOutput, error)
	RunReport(ctx context.Context, sc model.Scope, input RunReportInput) (ReportOutput, error)
	EvictCaches(ctx context.Context, input EvictCachesInput) (EvictCachesOutput, error)
}

// Publisher sends report run events to the configured broker.
//
//go:generate mockery --name Publisher
type Publisher interface {
	PublishReportRun(ctx context.Context, event ReportRunEvent) error
}
