package jwt

import (
	"errors"
	"fmt"
	"time"
)

const (
	// MinSecretKeyLen is the minimum length for an HS256 secret key.
	MinSecretKeyLen = 32

	defaultTTL = 8 * time.Hour
)

var (
	ErrInvalidToken  = errors.New("jwt: invalid token")
	ErrInvalidClaims = errors.New("jwt: invalid claims type")
)

func validateConfig(cfg Config) error {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return fmt.Errorf("jwt: secret key must be at least %d characters long, got %d", MinSecretKeyLen, len(cfg.SecretKey))
	}
	return nil
}
