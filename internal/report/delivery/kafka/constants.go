package kafka

const (
	TopicReportRun  = "reporting.report.run"
	TopicCacheEvict = "reporting.cache.evict"

	ConsumerGroupCacheEvict = "reporting-srv.cache-evict"

	EventTypeReportRun  = "report.run"
	EventTypeCacheEvict = "cache.evict"
)
