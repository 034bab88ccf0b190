package usecase

import (
	"context"

	"reporting-srv/internal/appuser"
	"reporting-srv/internal/report"
	"reporting-srv/internal/reporting"
)

func (uc *implUseCase) EvictCaches(ctx context.Context, input report.EvictCachesInput) (report.EvictCachesOutput, error) {
	types, err := uc.reporting.EvictReportTypes(ctx, reporting.EvictReportTypesInput{ReportName: input.ReportName})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.EvictCaches: reporting.EvictReportTypes failed: %v", err)
		return report.EvictCachesOutput{}, err
	}

	perms, err := uc.appUser.EvictPermissions(ctx, appuser.EvictPermissionsInput{UserID: input.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.EvictCaches: appUser.EvictPermissions failed: %v", err)
		return report.EvictCachesOutput{}, err
	}

	uc.l.Infof(ctx, "report.usecase.EvictCaches: evicted %d report types, %d permission lists", types, perms)
	return report.EvictCachesOutput{ReportTypes: types, Permissions: perms}, nil
}
