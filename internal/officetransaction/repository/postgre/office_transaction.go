package postgre

import (
	"context"
	"database/sql"
	"errors"

	"reporting-srv/internal/model"
	"reporting-srv/internal/officetransaction/repository"

	"github.com/lib/pq"
)

const pqForeignKeyViolation = "23503"

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.OfficeTransaction, error) {
	query, args, err := r.buildCreateQuery(opts).ToSql()
	if err != nil {
		return model.OfficeTransaction{}, err
	}

	t := model.OfficeTransaction{
		FromOfficeID:    opts.FromOfficeID,
		ToOfficeID:      opts.ToOfficeID,
		CurrencyCode:    opts.CurrencyCode,
		CurrencyDigits:  opts.CurrencyDigits,
		Amount:          opts.Amount,
		TransactionDate: opts.TransactionDate,
		Description:     opts.Description,
	}
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.CreatedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			return model.OfficeTransaction{}, repository.ErrOfficeNotFound
		}
		r.l.Errorf(ctx, "officetransaction.repository.postgre.Create: Failed to insert: %v", err)
		return model.OfficeTransaction{}, err
	}

	return t, nil
}

func (r *implRepository) GetByID(ctx context.Context, id int64) (model.OfficeTransaction, error) {
	query, args, err := r.buildGetByIDQuery(id).ToSql()
	if err != nil {
		return model.OfficeTransaction{}, err
	}

	t, err := scanOfficeTransaction(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.OfficeTransaction{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "officetransaction.repository.postgre.GetByID: Failed to get %d: %v", id, err)
		return model.OfficeTransaction{}, err
	}

	return t, nil
}

func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.OfficeTransaction, int64, error) {
	query, args, err := r.buildCountQuery(opts).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "officetransaction.repository.postgre.List: Failed to count: %v", err)
		return nil, 0, err
	}

	query, args, err = r.buildListQuery(opts).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "officetransaction.repository.postgre.List: Failed to query: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]model.OfficeTransaction, 0, opts.Limit)
	for rows.Next() {
		t, err := scanOfficeTransaction(rows)
		if err != nil {
			r.l.Errorf(ctx, "officetransaction.repository.postgre.List: Failed to scan: %v", err)
			return nil, 0, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return out, total, nil
}

func (r *implRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.buildDeleteQuery(id).ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "officetransaction.repository.postgre.Delete: Failed to delete %d: %v", id, err)
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
