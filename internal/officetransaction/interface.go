package officetransaction

import (
	"context"

	"reporting-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.OfficeTransaction, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (model.OfficeTransaction, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Delete(ctx context.Context, sc model.Scope, id int64) error
}
