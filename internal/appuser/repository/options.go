package repository

import (
	"time"

	"reporting-srv/internal/model"
)

type GetAppUserOptions struct {
	UserID int64
}

type SaveAppUserOptions struct {
	User model.AppUser
	TTL  time.Duration
}
