package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"reporting-srv/config"
	"reporting-srv/pkg/redis"
)

const (
	defaultPort = 6379
	// connectTimeout bounds the startup ping.
	connectTimeout = 5 * time.Second
)

var (
	instance redis.IRedis
	mu       sync.RWMutex

	ErrNotConnected = errors.New("redis: cache client not connected")
)

// Connect creates the cache client behind the report-type and permission caches.
// It returns the existing client when already connected; a failed attempt can be retried.
func Connect(ctx context.Context, cfg config.RedisConfig) (redis.IRedis, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	clientCfg, err := clientConfig(cfg)
	if err != nil {
		return nil, err
	}

	client, err := redis.NewRedis(clientCfg)
	if err != nil {
		return nil, fmt.Errorf("redis %s:%d: %w", clientCfg.Host, clientCfg.Port, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis %s:%d ping: %w", clientCfg.Host, clientCfg.Port, err)
	}

	instance = client
	return instance, nil
}

func clientConfig(cfg config.RedisConfig) (redis.RedisConfig, error) {
	if cfg.Host == "" {
		return redis.RedisConfig{}, redis.ErrHostRequired
	}
	if cfg.DB < 0 {
		return redis.RedisConfig{}, fmt.Errorf("redis: invalid db %d", cfg.DB)
	}
	port := cfg.Port
	if port == 0 {
		port = defaultPort
	}
	return redis.RedisConfig{
		Host:     cfg.Host,
		Port:     port,
		Password: cfg.Password,
		DB:       cfg.DB,
	}, nil
}

// GetClient returns the connected client. It panics before Connect succeeds.
func GetClient() redis.IRedis {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("redis cache client not initialized, call Connect first")
	}
	return instance
}

func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return ErrNotConnected
	}
	return instance.Ping(ctx)
}

// Disconnect closes the client. Calling it when not connected is a no-op.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
