package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"reporting-srv/internal/model"
	"reporting-srv/internal/reporting"
	"reporting-srv/internal/reporting/repository"

	"github.com/xuri/excelize/v2"
)

const (
	xlsxSheetName = "Sheet1"
	csvFlushEvery = 100
)

func (uc *implUseCase) RetrieveReportCSV(ctx context.Context, sc model.Scope, input reporting.ResultsetInput) (model.StreamingOutput, error) {
	q, err := uc.resolveQuery(ctx, sc, input)
	if err != nil {
		return nil, err
	}

	return func(w io.Writer) error {
		cw := csv.NewWriter(w)
		n := 0
		err := uc.repo.StreamQuery(ctx, repository.StreamQueryOptions{
			QueryOptions: q,
			OnHeader: func(headers []model.ResultsetColumnHeader) error {
				return cw.Write(model.GenericResultset{ColumnHeaders: headers}.ColumnNames())
			},
			OnRow: func(row model.ResultsetRow) error {
				if err := cw.Write(row.Strings()); err != nil {
					return err
				}
				n++
				if n%csvFlushEvery == 0 {
					cw.Flush()
					return cw.Error()
				}
				return nil
			},
		})
		if err != nil {
			uc.l.Errorf(ctx, "reporting.usecase.RetrieveReportCSV: stream %q failed: %v", input.ReportName, err)
			return err
		}
		cw.Flush()
		return cw.Error()
	}, nil
}

func (uc *implUseCase) RetrieveReportXLSX(ctx context.Context, sc model.Scope, input reporting.ResultsetInput) (model.StreamingOutput, error) {
	q, err := uc.resolveQuery(ctx, sc, input)
	if err != nil {
		return nil, err
	}

	return func(w io.Writer) error {
		f := excelize.NewFile()
		defer f.Close()

		sw, err := f.NewStreamWriter(xlsxSheetName)
		if err != nil {
			return err
		}

		rowNum := 1
		writeRow := func(values []string) error {
			cells := make([]interface{}, len(values))
			for i, v := range values {
				cells[i] = v
			}
			cell, err := excelize.CoordinatesToCellName(1, rowNum)
			if err != nil {
				return err
			}
			rowNum++
			return sw.SetRow(cell, cells)
		}

		err = uc.repo.StreamQuery(ctx, repository.StreamQueryOptions{
			QueryOptions: q,
			OnHeader: func(headers []model.ResultsetColumnHeader) error {
				return writeRow(model.GenericResultset{ColumnHeaders: headers}.ColumnNames())
			},
			OnRow: func(row model.ResultsetRow) error {
				return writeRow(row.Strings())
			},
		})
		if err != nil {
			uc.l.Errorf(ctx, "reporting.usecase.RetrieveReportXLSX: stream %q failed: %v", input.ReportName, err)
			return err
		}

		if err := sw.Flush(); err != nil {
			return fmt.Errorf("flush xlsx: %w", err)
		}
		_, err = f.WriteTo(w)
		return err
	}, nil
}
