package redis

import (
	"context"
	"errors"
	"time"

	"reporting-srv/internal/reporting/repository"
	pkgRedis "reporting-srv/pkg/redis"
)

const (
	Prefix     = "reporting:report_type:"
	defaultTTL = 10 * time.Minute
)

func (r *implRepository) GetReportType(ctx context.Context, reportName string) (string, error) {
	v, err := r.redis.Get(ctx, Prefix+reportName)
	if err != nil {
		if errors.Is(err, pkgRedis.ErrKeyNotFound) {
			return "", repository.ErrCacheMiss
		}
		r.l.Warnf(ctx, "reporting.repository.redis.GetReportType: %v", err)
		return "", err
	}
	return v, nil
}

func (r *implRepository) SaveReportType(ctx context.Context, opts repository.SaveReportTypeOptions) error {
	ttl := opts.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}
	if err := r.redis.Set(ctx, Prefix+opts.ReportName, opts.ReportType, ttl); err != nil {
		r.l.Warnf(ctx, "reporting.repository.redis.SaveReportType: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) DeleteReportType(ctx context.Context, reportName string) error {
	return r.redis.Delete(ctx, Prefix+reportName)
}

func (r *implRepository) DeleteAll(ctx context.Context) (int, error) {
	return r.redis.DeleteByPattern(ctx, Prefix+"*")
}
