package usecase

import (
	"context"

	"reporting-srv/internal/model"
	"reporting-srv/internal/report"
	"reporting-srv/internal/reporting"
)

func (uc *implUseCase) ListReports(ctx context.Context, sc model.Scope, input report.ListReportsInput) (report.ReportOutput, error) {
	in := reporting.ResultsetInput{
		ReportName:    model.ReportListName,
		ParameterType: model.ReportListParameterType,
		Params:        map[string]string{},
	}

	out, err := uc.render(ctx, sc, in, input.Flags, report.ReportListFileName)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ListReports: render failed: %v", err)
		return report.ReportOutput{}, err
	}

	uc.publishRun(ctx, sc, in, out.Format, "")
	return out, nil
}

func (uc *implUseCase) RunReport(ctx context.Context, sc model.Scope, input report.RunReportInput) (report.ReportOutput, error) {
	if !input.Flags.ParameterType {
		if err := uc.authorize(ctx, sc, input.ReportName); err != nil {
			return report.ReportOutput{}, err
		}
	}

	parameterTypeValue := report.ParameterTypeValueParameter
	if !input.Flags.ParameterType {
		parameterTypeValue = report.ParameterTypeValueReport

		reportType, err := uc.reporting.GetReportType(ctx, input.ReportName)
		if err != nil {
			uc.l.Errorf(ctx, "report.usecase.RunReport: reporting.GetReportType %q failed: %v", input.ReportName, err)
			return report.ReportOutput{}, err
		}
		if model.IsPentahoType(reportType) {
			return uc.runPentaho(ctx, sc, input)
		}
	}

	in := reporting.ResultsetInput{
		ReportName:    input.ReportName,
		ParameterType: parameterTypeValue,
		Params:        report.ExtractReportParams(input.Query, false),
	}

	out, err := uc.render(ctx, sc, in, input.Flags, input.ReportName)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.RunReport: render %q failed: %v", input.ReportName, err)
		return report.ReportOutput{}, err
	}

	uc.publishRun(ctx, sc, in, out.Format, "")
	return out, nil
}

// authorize returns a *report.NotAuthorizedError when the caller may not run reportName.
func (uc *implUseCase) authorize(ctx context.Context, sc model.Scope, reportName string) error {
	user, err := uc.appUser.AuthenticatedUser(ctx, sc)
	if err != nil {
		uc.l.Warnf(ctx, "report.usecase.authorize: appUser.AuthenticatedUser failed: %v", err)
		return err
	}
	if user.HasNotPermissionForReport(reportName) {
		return &report.NotAuthorizedError{ReportName: reportName}
	}
	return nil
}

func (uc *implUseCase) runPentaho(ctx context.Context, sc model.Scope, input report.RunReportInput) (report.ReportOutput, error) {
	outputType := report.FirstValue(input.Query, report.QueryOutputType)
	params := report.ExtractReportParams(input.Query, true)

	doc, err := uc.reporting.ProcessPentahoRequest(ctx, reporting.PentahoInput{
		ReportName: input.ReportName,
		OutputType: outputType,
		Params:     params,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.runPentaho: reporting.ProcessPentahoRequest %q failed: %v", input.ReportName, err)
		return report.ReportOutput{}, err
	}

	uc.publishRun(ctx, sc, reporting.ResultsetInput{
		ReportName:    input.ReportName,
		ParameterType: report.ParameterTypeValueReport,
		Params:        params,
	}, report.FormatPentaho, outputType)

	return report.ReportOutput{Format: report.FormatPentaho, Document: doc}, nil
}

// render runs the resultset, CSV or XLSX branch selected by flags.
func (uc *implUseCase) render(ctx context.Context, sc model.Scope, in reporting.ResultsetInput, flags report.Flags, fileName string) (report.ReportOutput, error) {
	switch format := flags.Format(); format {
	case report.FormatCSV:
		stream, err := uc.reporting.RetrieveReportCSV(ctx, sc, in)
		if err != nil {
			return report.ReportOutput{}, err
		}
		return report.ReportOutput{
			Format: format,
			Stream: stream,
			Document: model.Document{
				ContentType: report.ContentTypeCSV,
				Disposition: report.AttachmentDisposition(fileName, "csv"),
			},
		}, nil

	case report.FormatXLSX:
		stream, err := uc.reporting.RetrieveReportXLSX(ctx, sc, in)
		if err != nil {
			return report.ReportOutput{}, err
		}
		return report.ReportOutput{
			Format: format,
			Stream: stream,
			Document: model.Document{
				ContentType: report.ContentTypeXLSX,
				Disposition: report.AttachmentDisposition(fileName, "xlsx"),
			},
		}, nil

	default:
		rs, err := uc.reporting.RetrieveGenericResultset(ctx, sc, in)
		if err != nil {
			return report.ReportOutput{}, err
		}
		return report.ReportOutput{Format: report.FormatJSON, Pretty: flags.Pretty, Resultset: rs}, nil
	}
}
