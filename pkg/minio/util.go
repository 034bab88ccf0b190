package minio

import (
	"strings"

	"reporting-srv/config"
)

func validateConfig(cfg *config.MinIOConfig) error {
	if cfg == nil {
		return newInvalidInputError("config is required")
	}
	if cfg.Endpoint == "" {
		return newInvalidInputError("endpoint is required")
	}
	if cfg.AccessKey == "" {
		return newInvalidInputError("access key is required")
	}
	if cfg.SecretKey == "" {
		return newInvalidInputError("secret key is required")
	}
	if cfg.Bucket == "" {
		return newInvalidInputError("bucket is required")
	}
	if !strings.Contains(cfg.Endpoint, ":") {
		cfg.Endpoint = cfg.Endpoint + DefaultEndpointPort
	}
	return nil
}

func validateBucketName(name string) error {
	if len(name) < 3 || len(name) > 63 {
		return newInvalidInputError("bucket name must be between 3 and 63 characters")
	}
	return nil
}

func validateUploadRequest(req *UploadRequest) error {
	if req == nil {
		return newInvalidInputError("request is required")
	}
	if err := validateBucketName(req.BucketName); err != nil {
		return err
	}
	if req.ObjectName == "" {
		return newInvalidInputError("object name is required")
	}
	if strings.HasPrefix(req.ObjectName, "/") || strings.HasSuffix(req.ObjectName, "/") {
		return newInvalidInputError("object name cannot start or end with '/'")
	}
	if req.Reader == nil {
		return newInvalidInputError("reader is required")
	}
	if req.Size <= 0 {
		return newInvalidInputError("size must be positive")
	}
	if req.Size > MaxFileSizeBytes {
		return newInvalidInputError("file size cannot exceed 5GB")
	}
	if req.ContentType == "" {
		return newInvalidInputError("content type is required")
	}
	return nil
}
