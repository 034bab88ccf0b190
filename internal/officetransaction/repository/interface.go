package repository

import (
	"context"

	"reporting-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	Create(ctx context.Context, opts CreateOptions) (model.OfficeTransaction, error)
	GetByID(ctx context.Context, id int64) (model.OfficeTransaction, error)
	// List returns one page and the total number of matching rows.
	List(ctx context.Context, opts ListOptions) ([]model.OfficeTransaction, int64, error)
	Delete(ctx context.Context, id int64) error
}
