package postgre

import (
	"reporting-srv/internal/officetransaction/repository"

	sq "github.com/Masterminds/squirrel"
)

const tableOfficeTransaction = "m_office_transaction"

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	columns = []string{
		"id", "from_office_id", "to_office_id", "currency_code", "currency_digits",
		"transaction_amount", "transaction_date", "description", "created_at",
	}
)

func (r *implRepository) buildCreateQuery(opts repository.CreateOptions) sq.InsertBuilder {
	return psql.
		Insert(tableOfficeTransaction).
		Columns("from_office_id", "to_office_id", "currency_code", "currency_digits",
			"transaction_amount", "transaction_date", "description").
		Values(opts.FromOfficeID, opts.ToOfficeID, opts.CurrencyCode, opts.CurrencyDigits,
			opts.Amount, opts.TransactionDate, opts.Description).
		Suffix("RETURNING id, created_at")
}

func (r *implRepository) buildGetByIDQuery(id int64) sq.SelectBuilder {
	return psql.
		Select(columns...).
		From(tableOfficeTransaction).
		Where(sq.Eq{"id": id})
}

// buildListFilter - shared WHERE of the page and count queries.
func (r *implRepository) buildListFilter(opts repository.ListOptions) sq.And {
	conds := sq.And{}
	if opts.FromOfficeID.Valid {
		conds = append(conds, sq.Eq{"from_office_id": opts.FromOfficeID.Int64})
	}
	if opts.ToOfficeID.Valid {
		conds = append(conds, sq.Eq{"to_office_id": opts.ToOfficeID.Int64})
	}
	if opts.CurrencyCode != "" {
		conds = append(conds, sq.Eq{"currency_code": opts.CurrencyCode})
	}
	if opts.DateFrom.Valid {
		conds = append(conds, sq.GtOrEq{"transaction_date": opts.DateFrom.Time})
	}
	if opts.DateTo.Valid {
		conds = append(conds, sq.LtOrEq{"transaction_date": opts.DateTo.Time})
	}
	return conds
}

func (r *implRepository) buildListQuery(opts repository.ListOptions) sq.SelectBuilder {
	b := psql.
		Select(columns...).
		From(tableOfficeTransaction)
	if filter := r.buildListFilter(opts); len(filter) > 0 {
		b = b.Where(filter)
	}
	return b.
		OrderBy("transaction_date DESC", "id DESC").
		Limit(uint64(opts.Limit)).
		Offset(uint64(opts.Offset))
}

func (r *implRepository) buildCountQuery(opts repository.ListOptions) sq.SelectBuilder {
	b := psql.
		Select("COUNT(*)").
		From(tableOfficeTransaction)
	if filter := r.buildListFilter(opts); len(filter) > 0 {
		b = b.Where(filter)
	}
	return b
}

func (r *implRepository) buildDeleteQuery(id int64) sq.DeleteBuilder {
	return psql.
		Delete(tableOfficeTransaction).
		Where(sq.Eq{"id": id})
}
