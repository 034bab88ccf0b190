package model

// GenericResultset is the tabular answer of a report query.
type GenericResultset struct {
	ColumnHeaders []ResultsetColumnHeader `json:"columnHeaders"`
	Data          []ResultsetRow          `json:"data"`
}

// ResultsetColumnHeader names one column and its database type.
type ResultsetColumnHeader struct {
	ColumnName string `json:"columnName"`
	ColumnType string `json:"columnType"`
}

// ResultsetRow holds one row. A nil cell is a SQL NULL.
type ResultsetRow struct {
	Row []*string `json:"row"`
}

// Strings returns the row with NULL cells as empty strings.
func (r ResultsetRow) Strings() []string {
	out := make([]string, len(r.Row))
	for i, c := range r.Row {
		if c != nil {
			out[i] = *c
		}
	}
	return out
}

// ColumnNames returns the header names in order.
func (rs GenericResultset) ColumnNames() []string {
	names := make([]string, len(rs.ColumnHeaders))
	for i, h := range rs.ColumnHeaders {
		names[i] = h.ColumnName
	}
	return names
}
