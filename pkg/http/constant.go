package http

import "time"

const (
	DefaultTimeout   = 30 * time.Second
	DefaultRetries   = 2
	DefaultRetryWait = 500 * time.Millisecond

	// DefaultUserAgent is sent when the caller did not set one.
	DefaultUserAgent = "reporting-srv"
)

// DefaultConfig returns the default ClientConfig.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	}
}
