package repository

import (
	"context"

	"reporting-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	// ResolveSQL returns the SQL text of a report, a parameter or the built-in report list.
	ResolveSQL(ctx context.Context, opts ResolveSQLOptions) (string, error)
	GetReportType(ctx context.Context, reportName string) (string, error)
	RunQuery(ctx context.Context, opts QueryOptions) (model.GenericResultset, error)
	// StreamQuery calls OnHeader once, then OnRow for every row as it is read.
	StreamQuery(ctx context.Context, opts StreamQueryOptions) error
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	// GetReportType returns ErrCacheMiss when nothing is cached.
	GetReportType(ctx context.Context, reportName string) (string, error)
	SaveReportType(ctx context.Context, opts SaveReportTypeOptions) error
	DeleteReportType(ctx context.Context, reportName string) error
	DeleteAll(ctx context.Context) (int, error)
}
