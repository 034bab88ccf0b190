package postgre

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"reporting-srv/internal/officetransaction/repository"
	"reporting-srv/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aarondl/null/v8"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	txDate    = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	createdAt = time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)
	rowCols   = []string{"id", "from_office_id", "to_office_id", "currency_code", "currency_digits",
		"transaction_amount", "transaction_date", "description", "created_at"}
)

func newRepo(t *testing.T) (repository.PostgresRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return New(db, log.NewNop()), mock, func() { db.Close() }
}

func TestCreate(t *testing.T) {
	repo, mock, done := newRepo(t)
	defer done()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO m_office_transaction (from_office_id,to_office_id,currency_code,currency_digits,transaction_amount,transaction_date,description) VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id, created_at")).
		WithArgs(int64(1), int64(2), "USD", 2, 150.5, txDate, "float").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(10), createdAt))

	got, err := repo.Create(context.Background(), repository.CreateOptions{
		FromOfficeID:    null.Int64From(1),
		ToOfficeID:      null.Int64From(2),
		CurrencyCode:    "USD",
		CurrencyDigits:  2,
		Amount:          150.5,
		TransactionDate: txDate,
		Description:     null.StringFrom("float"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)
	assert.Equal(t, createdAt, got.CreatedAt)
	assert.Equal(t, "USD", got.CurrencyCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UnknownOffice(t *testing.T) {
	repo, mock, done := newRepo(t)
	defer done()

	mock.ExpectQuery("INSERT INTO m_office_transaction").
		WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})

	_, err := repo.Create(context.Background(), repository.CreateOptions{
		ToOfficeID:      null.Int64From(99),
		CurrencyCode:    "USD",
		Amount:          1,
		TransactionDate: txDate,
	})

	assert.ErrorIs(t, err, repository.ErrOfficeNotFound)
}

func TestGetByID(t *testing.T) {
	repo, mock, done := newRepo(t)
	defer done()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, from_office_id, to_office_id, currency_code, currency_digits, transaction_amount, transaction_date, description, created_at FROM m_office_transaction WHERE id = $1")).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(rowCols).
			AddRow(int64(10), nil, int64(2), "USD", 2, 150.5, txDate, nil, createdAt))

	got, err := repo.GetByID(context.Background(), 10)

	require.NoError(t, err)
	assert.False(t, got.FromOfficeID.Valid)
	assert.Equal(t, null.Int64From(2), got.ToOfficeID)
	assert.Equal(t, 150.5, got.Amount)
	assert.False(t, got.Description.Valid)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, done := newRepo(t)
	defer done()

	mock.ExpectQuery("SELECT .* FROM m_office_transaction").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 10)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestList(t *testing.T) {
	repo, mock, done := newRepo(t)
	defer done()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM m_office_transaction WHERE (from_office_id = $1 AND currency_code = $2)")).
		WithArgs(int64(1), "USD").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(21)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, from_office_id, to_office_id, currency_code, currency_digits, transaction_amount, transaction_date, description, created_at FROM m_office_transaction WHERE (from_office_id = $1 AND currency_code = $2) ORDER BY transaction_date DESC, id DESC LIMIT 10 OFFSET 20")).
		WithArgs(int64(1), "USD").
		WillReturnRows(sqlmock.NewRows(rowCols).
			AddRow(int64(21), int64(1), nil, "USD", 2, 5.0, txDate, "last", createdAt))

	got, total, err := repo.List(context.Background(), repository.ListOptions{
		FromOfficeID: null.Int64From(1),
		CurrencyCode: "USD",
		Limit:        10,
		Offset:       20,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	require.Len(t, got, 1)
	assert.Equal(t, null.StringFrom("last"), got[0].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_NoFilter(t *testing.T) {
	repo, mock, done := newRepo(t)
	defer done()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM m_office_transaction")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(regexp.QuoteMeta("FROM m_office_transaction ORDER BY transaction_date DESC, id DESC LIMIT 15 OFFSET 0")).
		WillReturnRows(sqlmock.NewRows(rowCols))

	got, total, err := repo.List(context.Background(), repository.ListOptions{Limit: 15})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestDelete(t *testing.T) {
	repo, mock, done := newRepo(t)
	defer done()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM m_office_transaction WHERE id = $1")).
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM m_office_transaction WHERE id = $1")).
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 10))
	assert.ErrorIs(t, repo.Delete(context.Background(), 11), repository.ErrNotFound)
}
