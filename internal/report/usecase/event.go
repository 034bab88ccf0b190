package usecase

import (
	"context"

	"reporting-srv/internal/model"
	"reporting-srv/internal/report"
	"reporting-srv/internal/reporting"

	"github.com/google/uuid"
)

// publishRun sends a report run event. Failures are logged and never returned.
func (uc *implUseCase) publishRun(ctx context.Context, sc model.Scope, in reporting.ResultsetInput, format report.Format, outputType string) {
	if uc.publisher == nil {
		return
	}

	event := report.ReportRunEvent{
		EventID:       uuid.NewString(),
		ReportName:    in.ReportName,
		ParameterType: in.ParameterType,
		Format:        format,
		OutputType:    outputType,
		UserID:        sc.UserID,
		ParamCount:    len(in.Params),
		RanAt:         uc.now().UTC(),
	}

	if err := uc.publisher.PublishReportRun(ctx, event); err != nil {
		uc.l.Warnf(ctx, "report.usecase.publishRun: publisher.PublishReportRun %q failed: %v", in.ReportName, err)
	}
}
