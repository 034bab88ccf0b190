package appuser

import "errors"

var (
	ErrUnauthenticated = errors.New("request has no authenticated user")
	ErrUserNotFound    = errors.New("user not found or disabled")
)
