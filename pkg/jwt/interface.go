package jwt

import (
	"reporting-srv/pkg/scope"
)

// IManager verifies access tokens issued by the identity service and can mint tokens
// with the same secret for service-to-service calls and tests.
// Implementations are safe for concurrent use.
type IManager interface {
	scope.Manager
	VerifyToken(tokenString string) (*Claims, error)
}

// New creates a new HS256 manager.
func New(cfg Config) (IManager, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}
	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		ttl:       ttl,
	}, nil
}
