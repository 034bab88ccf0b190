package repository

import "errors"

var (
	ErrUserNotFound = errors.New("repository: user not found")
	ErrCacheMiss    = errors.New("repository: cache miss")
)
