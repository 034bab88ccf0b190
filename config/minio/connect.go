package minio

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"reporting-srv/config"
	"reporting-srv/pkg/minio"
)

const connectTimeout = 10 * time.Second

var (
	instance minio.MinIO
	bucket   string
	mu       sync.RWMutex

	ErrNotConnected = errors.New("minio: document archive not connected")
)

// Connect creates the document archive client and makes sure cfg.Bucket exists.
// It returns the existing client when already connected; a failed attempt can be retried.
func Connect(ctx context.Context, cfg *config.MinIOConfig) (minio.MinIO, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := minio.NewMinIO(cfg)
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Connect(connectCtx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("minio %s: %w", cfg.Endpoint, err)
	}
	if err := client.EnsureBucket(connectCtx, cfg.Bucket); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("minio bucket %s: %w", cfg.Bucket, err)
	}

	instance = client
	bucket = cfg.Bucket
	return instance, nil
}

// GetClient returns the connected client. It panics before Connect succeeds.
func GetClient() minio.MinIO {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("minio document archive not initialized, call Connect first")
	}
	return instance
}

// HealthCheck reports an error when the server is unreachable or the archive bucket is gone.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return ErrNotConnected
	}
	if err := instance.HealthCheck(ctx); err != nil {
		return err
	}
	exists, err := instance.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("minio bucket %s: %w", bucket, minio.ErrBucketNotFound)
	}
	return nil
}

// Disconnect waits for queued archive uploads and closes the client.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	bucket = ""
	return err
}
