package minio

import "time"

const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
	disableCompression  = true
)

const (
	DefaultAsyncWorkers   = 4
	DefaultAsyncQueueSize = 100
	// DefaultEndpointPort is appended to an endpoint without a port.
	DefaultEndpointPort = ":9000"
	// MaxFileSizeBytes is the largest accepted upload (5GB).
	MaxFileSizeBytes = 5 * 1024 * 1024 * 1024

	asyncUploadTimeout = 2 * time.Minute
)
