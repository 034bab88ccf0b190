package httpserver

import (
	"context"

	appUserPostgre "reporting-srv/internal/appuser/repository/postgre"
	appUserRedis "reporting-srv/internal/appuser/repository/redis"
	appUserUsecase "reporting-srv/internal/appuser/usecase"
	reportingPostgre "reporting-srv/internal/reporting/repository/postgre"
	reportingRedis "reporting-srv/internal/reporting/repository/redis"
	reportingUsecase "reporting-srv/internal/reporting/usecase"
)

// setupCoreDomains builds the usecases the HTTP domains depend on (AppUser, Reporting).
func (srv *HTTPServer) setupCoreDomains(ctx context.Context) error {
	srv.appUserUC = appUserUsecase.New(
		appUserPostgre.New(srv.postgresDB, srv.l),
		appUserRedis.New(srv.redisClient, srv.l),
		srv.l,
		appUserUsecase.Config{PermissionsTTL: srv.config.Cache.PermissionsTTL},
	)

	srv.reportingUC = reportingUsecase.New(
		reportingPostgre.New(srv.postgresDB, srv.l),
		reportingRedis.New(srv.redisClient, srv.l),
		srv.pentahoClient,
		srv.minioClient,
		srv.l,
		reportingUsecase.Config{
			ReportTypeTTL:  srv.config.Cache.ReportTypeTTL,
			ArchiveEnabled: srv.config.Pentaho.ArchiveEnabled,
			ArchiveBucket:  srv.config.MinIO.Bucket,
		},
	)

	srv.l.Infof(ctx, "Core domains (AppUser, Reporting) initialized")
	return nil
}
