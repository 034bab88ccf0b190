package postgre

import (
	"database/sql"

	"reporting-srv/internal/model"

	"github.com/aarondl/null/v8"
)

func columnHeaders(rows *sql.Rows) ([]model.ResultsetColumnHeader, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	headers := make([]model.ResultsetColumnHeader, len(types))
	for i, t := range types {
		headers[i] = model.ResultsetColumnHeader{
			ColumnName: t.Name(),
			ColumnType: t.DatabaseTypeName(),
		}
	}
	return headers, nil
}

// buildRow copies the scanned cells, the scan buffer is reused for the next row.
func buildRow(cells []null.String) model.ResultsetRow {
	row := make([]*string, len(cells))
	for i, c := range cells {
		if c.Valid {
			v := c.String
			row[i] = &v
		}
	}
	return model.ResultsetRow{Row: row}
}
