package repository

import "errors"

var (
	ErrReportNotFound       = errors.New("repository: report not found")
	ErrParameterNotFound    = errors.New("repository: parameter not found")
	ErrInvalidParameterType = errors.New("repository: invalid parameter type")
	ErrCacheMiss            = errors.New("repository: cache miss")
)
