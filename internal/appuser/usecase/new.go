package usecase

import (
	"time"

	"reporting-srv/internal/appuser"
	"reporting-srv/internal/appuser/repository"
	"reporting-srv/pkg/log"
)

const defaultPermissionsTTL = 5 * time.Minute

// Config holds configuration for permission loading.
type Config struct {
	PermissionsTTL time.Duration
}

type implUseCase struct {
	repo   repository.PostgresRepository
	cache  repository.CacheRepository
	l      log.Logger
	config Config
}

// New creates a new appuser UseCase implementation. cache may be nil.
func New(repo repository.PostgresRepository, cache repository.CacheRepository, l log.Logger, cfg Config) appuser.UseCase {
	if cfg.PermissionsTTL <= 0 {
		cfg.PermissionsTTL = defaultPermissionsTTL
	}

	return &implUseCase{
		repo:   repo,
		cache:  cache,
		l:      l,
		config: cfg,
	}
}
