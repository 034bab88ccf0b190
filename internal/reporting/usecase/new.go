package usecase

import (
	"time"

	"reporting-srv/internal/reporting"
	"reporting-srv/internal/reporting/repository"
	"reporting-srv/pkg/log"
	"reporting-srv/pkg/minio"
	"reporting-srv/pkg/pentaho"
)

const (
	defaultReportTypeTTL = 10 * time.Minute
	defaultArchivePrefix = "pentaho"
)

// Config holds configuration for the reporting backend.
type Config struct {
	ReportTypeTTL  time.Duration
	ArchiveEnabled bool
	ArchiveBucket  string
	ArchivePrefix  string
}

type implUseCase struct {
	repo    repository.PostgresRepository
	cache   repository.CacheRepository
	pentaho pentaho.IPentaho
	minio   minio.MinIO
	l       log.Logger
	config  Config
	now     func() time.Time
}

// New creates a new reporting UseCase implementation.
// cache and minioClient may be nil. Archiving is off without minioClient.
func New(
	repo repository.PostgresRepository,
	cache repository.CacheRepository,
	pentahoClient pentaho.IPentaho,
	minioClient minio.MinIO,
	l log.Logger,
	cfg Config,
) reporting.UseCase {
	if cfg.ReportTypeTTL <= 0 {
		cfg.ReportTypeTTL = defaultReportTypeTTL
	}
	if cfg.ArchivePrefix == "" {
		cfg.ArchivePrefix = defaultArchivePrefix
	}
	if minioClient == nil || cfg.ArchiveBucket == "" {
		cfg.ArchiveEnabled = false
	}

	return &implUseCase{
		repo:    repo,
		cache:   cache,
		pentaho: pentahoClient,
		minio:   minioClient,
		l:       l,
		config:  cfg,
		now:     time.Now,
	}
}
