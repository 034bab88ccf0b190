package redis

import (
	"reporting-srv/internal/appuser/repository"
	"reporting-srv/pkg/log"
	pkgRedis "reporting-srv/pkg/redis"
)

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}
