package minio

import (
	"context"
	"net/http"

	"reporting-srv/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO is the object storage client used to archive rendered documents.
type MinIO interface {
	Connection
	BucketManager
	FileUploader
	AsyncUploader
}

// Connection defines connection lifecycle operations.
type Connection interface {
	Connect(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Close() error
}

// BucketManager defines bucket operations.
type BucketManager interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	// EnsureBucket creates bucketName when it does not exist.
	EnsureBucket(ctx context.Context, bucketName string) error
}

// FileUploader uploads objects synchronously.
type FileUploader interface {
	UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error)
}

// AsyncUploader queues uploads on a fixed worker pool.
type AsyncUploader interface {
	// UploadAsync queues req and returns its task id. It returns ErrQueueFull instead of blocking.
	UploadAsync(req *UploadRequest, done func(*FileInfo, error)) (string, error)
}

// NewMinIO creates a client and starts the async upload workers.
func NewMinIO(cfg *config.MinIOConfig) (MinIO, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
		DisableCompression:  disableCompression,
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, err
	}

	workers := cfg.AsyncUploadWorkers
	if workers <= 0 {
		workers = DefaultAsyncWorkers
	}
	queueSize := cfg.AsyncUploadQueueSize
	if queueSize <= 0 {
		queueSize = DefaultAsyncQueueSize
	}

	impl := &implMinIO{
		minioClient: client,
		config:      cfg,
		queue:       make(chan *asyncTask, queueSize),
		quit:        make(chan struct{}),
	}
	impl.startWorkers(workers)

	return impl, nil
}
