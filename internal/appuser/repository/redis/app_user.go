package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"reporting-srv/internal/appuser/repository"
	"reporting-srv/internal/model"
	pkgRedis "reporting-srv/pkg/redis"
)

const (
	Prefix     = "reporting:permissions:"
	defaultTTL = 5 * time.Minute
)

type cachedAppUser struct {
	Username    string   `json:"username"`
	Permissions []string `json:"permissions"`
}

func key(userID int64) string {
	return fmt.Sprintf("%s%d", Prefix, userID)
}

func (r *implRepository) GetAppUser(ctx context.Context, userID int64) (model.AppUser, error) {
	data, err := r.redis.Get(ctx, key(userID))
	if err != nil {
		if errors.Is(err, pkgRedis.ErrKeyNotFound) {
			return model.AppUser{}, repository.ErrCacheMiss
		}
		r.l.Warnf(ctx, "appuser.repository.redis.GetAppUser: %v", err)
		return model.AppUser{}, err
	}

	var cached cachedAppUser
	if err := json.Unmarshal([]byte(data), &cached); err != nil {
		r.l.Warnf(ctx, "appuser.repository.redis.GetAppUser: unmarshal error: %v", err)
		return model.AppUser{}, repository.ErrCacheMiss
	}

	return model.AppUser{ID: userID, Username: cached.Username, Permissions: cached.Permissions}, nil
}

func (r *implRepository) SaveAppUser(ctx context.Context, opts repository.SaveAppUserOptions) error {
	data, err := json.Marshal(cachedAppUser{Username: opts.User.Username, Permissions: opts.User.Permissions})
	if err != nil {
		return err
	}

	ttl := opts.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	if err := r.redis.Set(ctx, key(opts.User.ID), data, ttl); err != nil {
		r.l.Warnf(ctx, "appuser.repository.redis.SaveAppUser: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) DeleteAppUser(ctx context.Context, userID int64) error {
	return r.redis.Delete(ctx, key(userID))
}

func (r *implRepository) DeleteAll(ctx context.Context) (int, error) {
	return r.redis.DeleteByPattern(ctx, Prefix+"*")
}
