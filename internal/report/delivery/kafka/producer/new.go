package producer

import (
	"reporting-srv/internal/report"
	pkgKafka "reporting-srv/pkg/kafka"
	"reporting-srv/pkg/log"
)

type Producer interface {
	report.Publisher
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a report run producer on top of a topic-bound Kafka producer.
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
