package kafka

import "time"

// ReportRunMessage is the payload of TopicReportRun. The message key is the report name.
type ReportRunMessage struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	ReportName    string    `json:"report_name"`
	ParameterType string    `json:"parameter_type"`
	Format        string    `json:"format"`
	OutputType    string    `json:"output_type,omitempty"`
	UserID        string    `json:"user_id"`
	ParamCount    int       `json:"param_count"`
	RanAt         time.Time `json:"ran_at"`
}

// CacheEvictMessage is the payload of TopicCacheEvict. It is published when
// stretchy report metadata or user permissions change. Zero fields evict everything.
type CacheEvictMessage struct {
	EventID    string `json:"event_id"`
	EventType  string `json:"event_type"`
	ReportName string `json:"report_name,omitempty"`
	UserID     int64  `json:"user_id,omitempty"`
}
