package usecase

import (
	"time"

	"reporting-srv/internal/appuser"
	"reporting-srv/internal/report"
	"reporting-srv/internal/reporting"
	"reporting-srv/pkg/log"
)

type implUseCase struct {
	reporting reporting.UseCase
	appUser   appuser.UseCase
	publisher report.Publisher
	l         log.Logger
	now       func() time.Time
}

// New creates a report dispatch UseCase. publisher may be nil to disable run events.
func New(reportingUC reporting.UseCase, appUserUC appuser.UseCase, publisher report.Publisher, l log.Logger) report.UseCase {
	return &implUseCase{
		reporting: reportingUC,
		appUser:   appUserUC,
		publisher: publisher,
		l:         l,
		now:       time.Now,
	}
}
