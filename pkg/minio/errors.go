package minio

import (
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
)

var (
	ErrQueueFull      = errors.New("minio: async upload queue is full")
	ErrClosed         = errors.New("minio: client is closed")
	ErrBucketNotFound = errors.New("minio: bucket not found")
	ErrObjectNotFound = errors.New("minio: object not found")
	ErrAccessDenied   = errors.New("minio: access denied")
)

// StorageError wraps a failed storage operation.
type StorageError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("minio %s: %s: %v", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("minio %s: %s", e.Operation, e.Message)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// InvalidInputError reports a rejected request before any call to the server.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return "minio: invalid input: " + e.Message
}

func newInvalidInputError(msg string) error {
	return &InvalidInputError{Message: msg}
}

func handleMinIOError(err error, operation string) error {
	if err == nil {
		return nil
	}
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		switch resp.Code {
		case "NoSuchBucket":
			return &StorageError{Operation: operation, Message: "bucket not found", Cause: ErrBucketNotFound}
		case "NoSuchKey":
			return &StorageError{Operation: operation, Message: "object not found", Cause: ErrObjectNotFound}
		case "AccessDenied":
			return &StorageError{Operation: operation, Message: "access denied", Cause: ErrAccessDenied}
		}
		return &StorageError{Operation: operation, Message: resp.Code, Cause: err}
	}
	return &StorageError{Operation: operation, Message: "request failed", Cause: err}
}
