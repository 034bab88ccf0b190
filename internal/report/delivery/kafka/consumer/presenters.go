package consumer

import (
	"reporting-srv/internal/report"
	kafkaDelivery "reporting-srv/internal/report/delivery/kafka"
)

func toEvictCachesInput(m kafkaDelivery.CacheEvictMessage) report.EvictCachesInput {
	return report.EvictCachesInput{
		ReportName: m.ReportName,
		UserID:     m.UserID,
	}
}
