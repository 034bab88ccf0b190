package consumer

import (
	"context"
	"fmt"

	appUserPostgre "reporting-srv/internal/appuser/repository/postgre"
	appUserRedis "reporting-srv/internal/appuser/repository/redis"
	appUserUsecase "reporting-srv/internal/appuser/usecase"
	reportConsumer "reporting-srv/internal/report/delivery/kafka/consumer"
	reportUsecase "reporting-srv/internal/report/usecase"
	reportingPostgre "reporting-srv/internal/reporting/repository/postgre"
	reportingRedis "reporting-srv/internal/reporting/repository/redis"
	reportingUsecase "reporting-srv/internal/reporting/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	reportConsumer reportConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	appUserUC := appUserUsecase.New(
		appUserPostgre.New(srv.postgresDB, srv.l),
		appUserRedis.New(srv.redisClient, srv.l),
		srv.l,
		appUserUsecase.Config{PermissionsTTL: srv.cacheConfig.PermissionsTTL},
	)

	// Eviction never renders documents, so no Pentaho or MinIO client is wired here.
	reportingUC := reportingUsecase.New(
		reportingPostgre.New(srv.postgresDB, srv.l),
		reportingRedis.New(srv.redisClient, srv.l),
		nil,
		nil,
		srv.l,
		reportingUsecase.Config{ReportTypeTTL: srv.cacheConfig.ReportTypeTTL},
	)

	reportUC := reportUsecase.New(reportingUC, appUserUC, nil, srv.l)

	reportCons, err := reportConsumer.New(reportConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     reportUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report consumer: %w", err)
	}

	srv.l.Infof(ctx, "Report domain initialized")

	return &domainConsumers{
		reportConsumer: reportCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.reportConsumer.ConsumeCacheEvict(ctx); err != nil {
		return fmt.Errorf("failed to start report consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.reportConsumer != nil {
		if err := consumers.reportConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing report consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
