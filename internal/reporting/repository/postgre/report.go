package postgre

import (
	"context"
	"database/sql"
	"errors"

	"reporting-srv/internal/model"
	"reporting-srv/internal/reporting/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
)

// ResolveSQL - report_sql, parameter_sql or the built-in list query.
func (r *implRepository) ResolveSQL(ctx context.Context, opts repository.ResolveSQLOptions) (string, error) {
	if opts.Name == repository.ListName && opts.ParameterType == repository.ListParameterType {
		return reportListSQL, nil
	}

	var (
		builder  sq.SelectBuilder
		notFound error
	)
	switch opts.ParameterType {
	case model.ParameterTypeReport:
		builder, notFound = r.buildReportSQLQuery(opts.Name), repository.ErrReportNotFound
	case model.ParameterTypeParameter:
		builder, notFound = r.buildParameterSQLQuery(opts.Name), repository.ErrParameterNotFound
	default:
		return "", repository.ErrInvalidParameterType
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", err
	}

	var text null.String
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&text); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", notFound
		}
		r.l.Errorf(ctx, "reporting.repository.postgre.ResolveSQL: Failed to get sql of %s %q: %v", opts.ParameterType, opts.Name, err)
		return "", err
	}

	return text.String, nil
}

// GetReportType - stretchy_report.report_type by name.
func (r *implRepository) GetReportType(ctx context.Context, reportName string) (string, error) {
	query, args, err := r.buildReportTypeQuery(reportName).ToSql()
	if err != nil {
		return "", err
	}

	var reportType string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&reportType); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", repository.ErrReportNotFound
		}
		r.l.Errorf(ctx, "reporting.repository.postgre.GetReportType: Failed to get report type: %v", err)
		return "", err
	}

	return reportType, nil
}

// RunQuery - run and collect the whole resultset.
func (r *implRepository) RunQuery(ctx context.Context, opts repository.QueryOptions) (model.GenericResultset, error) {
	rs := model.GenericResultset{
		ColumnHeaders: []model.ResultsetColumnHeader{},
		Data:          []model.ResultsetRow{},
	}

	err := r.StreamQuery(ctx, repository.StreamQueryOptions{
		QueryOptions: opts,
		OnHeader: func(headers []model.ResultsetColumnHeader) error {
			rs.ColumnHeaders = headers
			return nil
		},
		OnRow: func(row model.ResultsetRow) error {
			rs.Data = append(rs.Data, row)
			return nil
		},
	})
	if err != nil {
		return model.GenericResultset{}, err
	}

	return rs, nil
}

// StreamQuery - run and hand every row to opts.OnRow without buffering.
func (r *implRepository) StreamQuery(ctx context.Context, opts repository.StreamQueryOptions) error {
	rows, err := r.db.QueryContext(ctx, opts.SQL, opts.Args...)
	if err != nil {
		r.l.Errorf(ctx, "reporting.repository.postgre.StreamQuery: Failed to run query: %v", err)
		return err
	}
	defer rows.Close()

	headers, err := columnHeaders(rows)
	if err != nil {
		return err
	}
	if opts.OnHeader != nil {
		if err := opts.OnHeader(headers); err != nil {
			return err
		}
	}

	cells := make([]null.String, len(headers))
	dest := make([]any, len(headers))
	for i := range cells {
		dest[i] = &cells[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			r.l.Errorf(ctx, "reporting.repository.postgre.StreamQuery: Failed to scan row: %v", err)
			return err
		}
		if opts.OnRow != nil {
			if err := opts.OnRow(buildRow(cells)); err != nil {
				return err
			}
		}
	}

	return rows.Err()
}
