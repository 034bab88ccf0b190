package repository

import (
	"context"

	"reporting-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	// GetAppUser returns ErrUserNotFound for a missing or disabled user.
	GetAppUser(ctx context.Context, opts GetAppUserOptions) (model.AppUser, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	// GetAppUser returns ErrCacheMiss when nothing is cached.
	GetAppUser(ctx context.Context, userID int64) (model.AppUser, error)
	SaveAppUser(ctx context.Context, opts SaveAppUserOptions) error
	DeleteAppUser(ctx context.Context, userID int64) error
	DeleteAll(ctx context.Context) (int, error)
}
