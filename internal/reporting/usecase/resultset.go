package usecase

import (
	"context"
	"errors"

	"reporting-srv/internal/model"
	"reporting-srv/internal/reporting"
	"reporting-srv/internal/reporting/repository"
)

func (uc *implUseCase) RetrieveGenericResultset(ctx context.Context, sc model.Scope, input reporting.ResultsetInput) (model.GenericResultset, error) {
	q, err := uc.resolveQuery(ctx, sc, input)
	if err != nil {
		return model.GenericResultset{}, err
	}

	rs, err := uc.repo.RunQuery(ctx, q)
	if err != nil {
		uc.l.Errorf(ctx, "reporting.usecase.RetrieveGenericResultset: repo.RunQuery %q failed: %v", input.ReportName, err)
		return model.GenericResultset{}, reporting.ErrQueryFailed
	}

	return rs, nil
}

// resolveQuery looks up the SQL text and binds the placeholders.
func (uc *implUseCase) resolveQuery(ctx context.Context, sc model.Scope, input reporting.ResultsetInput) (repository.QueryOptions, error) {
	text, err := uc.repo.ResolveSQL(ctx, repository.ResolveSQLOptions{
		Name:          input.ReportName,
		ParameterType: input.ParameterType,
	})
	if err != nil {
		return repository.QueryOptions{}, uc.mapRepoError(ctx, "resolveQuery", err)
	}
	if text == "" {
		return repository.QueryOptions{}, reporting.ErrReportHasNoSQL
	}

	sqlText, args, err := bindParameters(text, withScopeParams(sc, input.Params))
	if err != nil {
		return repository.QueryOptions{}, err
	}

	return repository.QueryOptions{SQL: sqlText, Args: args}, nil
}

// withScopeParams adds ${currentUserId} unless the caller passed it.
func withScopeParams(sc model.Scope, params map[string]string) map[string]string {
	out := make(map[string]string, len(params)+1)
	for k, v := range params {
		out[k] = v
	}
	if _, ok := out[reporting.CurrentUserIDParam]; !ok && sc.UserID != "" {
		out[reporting.CurrentUserIDParam] = sc.UserID
	}
	return out
}

func (uc *implUseCase) mapRepoError(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrReportNotFound):
		return reporting.ErrReportNotFound
	case errors.Is(err, repository.ErrParameterNotFound):
		return reporting.ErrParameterNotFound
	case errors.Is(err, repository.ErrInvalidParameterType):
		return reporting.ErrInvalidParameterType
	default:
		uc.l.Errorf(ctx, "reporting.usecase.%s: %v", op, err)
		return err
	}
}
