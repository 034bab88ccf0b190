package minio

import (
	"io"
	"sync"
	"time"

	"reporting-srv/config"

	"github.com/minio/minio-go/v7"
)

type implMinIO struct {
	minioClient *minio.Client
	config      *config.MinIOConfig

	mu        sync.RWMutex
	connected bool

	queue     chan *asyncTask
	quit      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// FileInfo describes a stored object.
type FileInfo struct {
	BucketName   string            `json:"bucket_name"`
	ObjectName   string            `json:"object_name"`
	Size         int64             `json:"size"`
	ContentType  string            `json:"content_type"`
	ETag         string            `json:"etag"`
	LastModified time.Time         `json:"last_modified"`
	Metadata     map[string]string `json:"metadata"`
}

// UploadRequest describes one object to store.
type UploadRequest struct {
	BucketName  string            `json:"bucket_name"`
	ObjectName  string            `json:"object_name"`
	Reader      io.Reader         `json:"-"`
	Size        int64             `json:"size"`
	ContentType string            `json:"content_type"`
	Metadata    map[string]string `json:"metadata"`
}

type asyncTask struct {
	id   string
	req  *UploadRequest
	done func(*FileInfo, error)
}
