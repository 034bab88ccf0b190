package postgre

import (
	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// reportListSQL is the built-in "." report: every usable report with its parameter names.
const reportListSQL = `SELECT r.report_id, r.report_name, r.report_type, r.report_subtype, r.report_category, r.description,
       COALESCE(string_agg(p.parameter_name, ',' ORDER BY p.parameter_name), '') AS parameters
  FROM stretchy_report r
  LEFT JOIN stretchy_report_parameter rp ON rp.report_id = r.report_id
  LEFT JOIN stretchy_parameter p ON p.parameter_id = rp.parameter_id
 WHERE r.use_report = TRUE
 GROUP BY r.report_id, r.report_name, r.report_type, r.report_subtype, r.report_category, r.description
 ORDER BY r.report_name`

func (r *implRepository) buildReportSQLQuery(reportName string) sq.SelectBuilder {
	return psql.
		Select("report_sql").
		From("stretchy_report").
		Where(sq.Eq{"report_name": reportName})
}

func (r *implRepository) buildParameterSQLQuery(parameterName string) sq.SelectBuilder {
	return psql.
		Select("parameter_sql").
		From("stretchy_parameter").
		Where(sq.Eq{"parameter_name": parameterName})
}

func (r *implRepository) buildReportTypeQuery(reportName string) sq.SelectBuilder {
	return psql.
		Select("report_type").
		From("stretchy_report").
		Where(sq.Eq{"report_name": reportName})
}
