package usecase

import (
	"context"
	"errors"
	"strings"

	"reporting-srv/internal/model"
	"reporting-srv/internal/officetransaction"
	"reporting-srv/internal/officetransaction/repository"
	"reporting-srv/pkg/paginator"

	"github.com/aarondl/null/v8"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input officetransaction.CreateInput) (model.OfficeTransaction, error) {
	if err := validateCreate(input); err != nil {
		return model.OfficeTransaction{}, err
	}

	digits := officetransaction.DefaultCurrencyDigits
	if input.CurrencyDigits != nil {
		digits = *input.CurrencyDigits
	}

	t, err := uc.repo.Create(ctx, repository.CreateOptions{
		FromOfficeID:    null.Int64FromPtr(input.FromOfficeID),
		ToOfficeID:      null.Int64FromPtr(input.ToOfficeID),
		CurrencyCode:    strings.ToUpper(input.CurrencyCode),
		CurrencyDigits:  digits,
		Amount:          input.Amount,
		TransactionDate: input.TransactionDate,
		Description:     null.NewString(input.Description, input.Description != ""),
	})
	if err != nil {
		if errors.Is(err, repository.ErrOfficeNotFound) {
			return model.OfficeTransaction{}, officetransaction.ErrOfficeNotFound
		}
		uc.l.Errorf(ctx, "officetransaction.usecase.Create: repo.Create failed: %v", err)
		return model.OfficeTransaction{}, err
	}

	uc.l.Infof(ctx, "officetransaction.usecase.Create: user %s created transaction %d", sc.UserID, t.ID)
	return t, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (model.OfficeTransaction, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.OfficeTransaction{}, officetransaction.ErrNotFound
		}
		uc.l.Errorf(ctx, "officetransaction.usecase.Detail: repo.GetByID failed: %v", err)
		return model.OfficeTransaction{}, err
	}
	return t, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input officetransaction.ListInput) (officetransaction.ListOutput, error) {
	if err := validateList(input); err != nil {
		return officetransaction.ListOutput{}, err
	}

	input.Paginate.Adjust()

	opts := repository.ListOptions{
		FromOfficeID: null.Int64FromPtr(input.FromOfficeID),
		ToOfficeID:   null.Int64FromPtr(input.ToOfficeID),
		CurrencyCode: strings.ToUpper(input.CurrencyCode),
		DateFrom:     null.TimeFromPtr(input.DateFrom),
		DateTo:       null.TimeFromPtr(input.DateTo),
		Limit:        input.Paginate.Limit,
		Offset:       input.Paginate.Offset(),
	}

	ts, total, err := uc.repo.List(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "officetransaction.usecase.List: repo.List failed: %v", err)
		return officetransaction.ListOutput{}, err
	}

	return officetransaction.ListOutput{
		Transactions: ts,
		Paginator:    paginator.New(input.Paginate, total, int64(len(ts))),
	}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return officetransaction.ErrNotFound
		}
		uc.l.Errorf(ctx, "officetransaction.usecase.Delete: repo.Delete failed: %v", err)
		return err
	}

	uc.l.Infof(ctx, "officetransaction.usecase.Delete: user %s deleted transaction %d", sc.UserID, id)
	return nil
}
