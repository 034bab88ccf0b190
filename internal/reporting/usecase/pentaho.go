package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"reporting-srv/internal/model"
	"reporting-srv/internal/reporting"
	"reporting-srv/pkg/minio"
	"reporting-srv/pkg/pentaho"

	"github.com/google/uuid"
)

func (uc *implUseCase) ProcessPentahoRequest(ctx context.Context, input reporting.PentahoInput) (model.Document, error) {
	outputType, err := pentaho.ParseOutputType(input.OutputType)
	if err != nil {
		return model.Document{}, reporting.ErrUnsupportedOutputType
	}

	content, err := uc.pentaho.GenerateContent(ctx, pentaho.ContentRequest{
		ReportName: input.ReportName,
		OutputType: outputType,
		Params:     input.Params,
	})
	if err != nil {
		uc.l.Errorf(ctx, "reporting.usecase.ProcessPentahoRequest: pentaho.GenerateContent %q failed: %v", input.ReportName, err)
		var reqErr *pentaho.RequestError
		if errors.As(err, &reqErr) {
			return model.Document{}, fmt.Errorf("%w: status %d", reporting.ErrPentahoFailed, reqErr.StatusCode)
		}
		return model.Document{}, fmt.Errorf("%w: %v", reporting.ErrPentahoFailed, err)
	}

	doc := model.Document{
		ContentType: outputType.ContentType(),
		Body:        content.Body,
	}
	if outputType.IsAttachment() {
		doc.Disposition = "attachment;filename=" + strings.ReplaceAll(input.ReportName, " ", "") + "." + outputType.Extension()
	}

	if uc.config.ArchiveEnabled {
		uc.archive(ctx, input.ReportName, outputType, doc)
	}

	return doc, nil
}

// archive queues the rendered document for upload. Failures are logged only.
func (uc *implUseCase) archive(ctx context.Context, reportName string, outputType pentaho.OutputType, doc model.Document) {
	objectName := uc.archiveObjectName(reportName, outputType)

	_, err := uc.minio.UploadAsync(&minio.UploadRequest{
		BucketName:  uc.config.ArchiveBucket,
		ObjectName:  objectName,
		Reader:      bytes.NewReader(doc.Body),
		Size:        int64(len(doc.Body)),
		ContentType: doc.ContentType,
		Metadata:    map[string]string{"report-name": reportName},
	}, func(_ *minio.FileInfo, err error) {
		if err != nil {
			uc.l.Warnf(context.Background(), "reporting.usecase.archive: upload %s failed: %v", objectName, err)
		}
	})
	if err != nil {
		uc.l.Warnf(ctx, "reporting.usecase.archive: queue %s failed: %v", objectName, err)
	}
}

// archiveObjectName builds <prefix>/<report>/<yyyy>/<mm>/<dd>/<uuid>.<ext>.
func (uc *implUseCase) archiveObjectName(reportName string, outputType pentaho.OutputType) string {
	now := uc.now().UTC()
	return path.Join(
		uc.config.ArchivePrefix,
		strings.ReplaceAll(reportName, " ", "_"),
		now.Format("2006"), now.Format("01"), now.Format("02"),
		uuid.NewString()+"."+outputType.Extension(),
	)
}
