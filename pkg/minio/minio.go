package minio

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		m.connected = false
		return handleMinIOError(err, "connect")
	}
	m.connected = true
	return nil
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	connected := m.connected
	m.mu.RUnlock()
	if !connected {
		return &StorageError{Operation: "health_check", Message: "not connected"}
	}
	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		return handleMinIOError(err, "health_check")
	}
	return nil
}

// Close stops accepting async uploads and waits for queued ones to finish.
func (m *implMinIO) Close() error {
	m.closeOnce.Do(func() {
		close(m.quit)
		m.wg.Wait()
	})
	m.mu.Lock()
	m.connected = false
	m.mu.Unlock()
	return nil
}

func (m *implMinIO) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	if err := validateBucketName(bucketName); err != nil {
		return false, err
	}
	exists, err := m.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return false, handleMinIOError(err, "bucket_exists")
	}
	return exists, nil
}

func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := m.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.config.Region}); err != nil {
		return handleMinIOError(err, "make_bucket")
	}
	return nil
}

func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if err := validateUploadRequest(req); err != nil {
		return nil, err
	}

	opts := minio.PutObjectOptions{ContentType: req.ContentType, UserMetadata: req.Metadata}
	info, err := m.minioClient.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, opts)
	if err != nil {
		return nil, handleMinIOError(err, "upload_file")
	}

	return &FileInfo{
		BucketName:   req.BucketName,
		ObjectName:   req.ObjectName,
		Size:         info.Size,
		ContentType:  req.ContentType,
		ETag:         info.ETag,
		LastModified: time.Now(),
		Metadata:     req.Metadata,
	}, nil
}

func (m *implMinIO) UploadAsync(req *UploadRequest, done func(*FileInfo, error)) (string, error) {
	if err := validateUploadRequest(req); err != nil {
		return "", err
	}

	select {
	case <-m.quit:
		return "", ErrClosed
	default:
	}

	task := &asyncTask{id: uuid.New().String(), req: req, done: done}
	select {
	case m.queue <- task:
		return task.id, nil
	default:
		return "", ErrQueueFull
	}
}

func (m *implMinIO) startWorkers(n int) {
	for i := 0; i < n; i++ {
		m.wg.Add(1)
		go m.worker()
	}
}

func (m *implMinIO) worker() {
	defer m.wg.Done()
	for {
		select {
		case task := <-m.queue:
			m.runTask(task)
		case <-m.quit:
			// drain what is already queued
			for {
				select {
				case task := <-m.queue:
					m.runTask(task)
				default:
					return
				}
			}
		}
	}
}

func (m *implMinIO) runTask(task *asyncTask) {
	ctx, cancel := context.WithTimeout(context.Background(), asyncUploadTimeout)
	defer cancel()

	info, err := m.UploadFile(ctx, task.req)
	if task.done != nil {
		task.done(info, err)
	}
}
