package redis

import "time"

const (
	DefaultConnectTimeout = 5 * time.Second

	scanBatchSize = 100
)
