package usecase

import (
	"context"
	"errors"

	"reporting-srv/internal/reporting"
	"reporting-srv/internal/reporting/repository"
)

func (uc *implUseCase) GetReportType(ctx context.Context, reportName string) (string, error) {
	if uc.cache != nil {
		t, err := uc.cache.GetReportType(ctx, reportName)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "reporting.usecase.GetReportType: cache read failed, falling back to database: %v", err)
		}
	}

	t, err := uc.repo.GetReportType(ctx, reportName)
	if err != nil {
		return "", uc.mapRepoError(ctx, "GetReportType", err)
	}

	if uc.cache != nil {
		if err := uc.cache.SaveReportType(ctx, repository.SaveReportTypeOptions{
			ReportName: reportName,
			ReportType: t,
			TTL:        uc.config.ReportTypeTTL,
		}); err != nil {
			uc.l.Warnf(ctx, "reporting.usecase.GetReportType: cache write failed: %v", err)
		}
	}

	return t, nil
}

func (uc *implUseCase) EvictReportTypes(ctx context.Context, input reporting.EvictReportTypesInput) (int, error) {
	if uc.cache == nil {
		return 0, nil
	}
	if input.ReportName != "" {
		if err := uc.cache.DeleteReportType(ctx, input.ReportName); err != nil {
			uc.l.Errorf(ctx, "reporting.usecase.EvictReportTypes: cache.DeleteReportType failed: %v", err)
			return 0, err
		}
		return 1, nil
	}

	n, err := uc.cache.DeleteAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "reporting.usecase.EvictReportTypes: cache.DeleteAll failed: %v", err)
		return 0, err
	}
	return n, nil
}
