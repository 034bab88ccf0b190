package consumer

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"

	"reporting-srv/config"
	"reporting-srv/internal/report"
	pkgKafka "reporting-srv/pkg/kafka"
	"reporting-srv/pkg/log"
)

// Consumer consumes report domain topics.
type Consumer interface {
	// ConsumeCacheEvict starts consuming cache eviction events in the background.
	ConsumeCacheEvict(ctx context.Context) error
	Close() error
}

// Config holds the configuration for the report consumer.
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     report.UseCase
}

type consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          report.UseCase

	cacheEvictGroup sarama.ConsumerGroup
}

// New creates a new report consumer.
func New(cfg Config) (Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

// Close closes all consumer groups.
func (c *consumer) Close() error {
	if c.cacheEvictGroup != nil {
		if err := c.cacheEvictGroup.Close(); err != nil {
			return fmt.Errorf("failed to close cache evict group: %w", err)
		}
	}
	return nil
}

func (c *consumer) createConsumerGroup(groupID string) (sarama.ConsumerGroup, error) {
	group, err := pkgKafka.NewConsumerGroup(pkgKafka.ConsumerConfig{
		Brokers:  c.kafkaConfig.Brokers,
		GroupID:  groupID,
		ClientID: c.kafkaConfig.ClientID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", groupID, err)
	}
	return group, nil
}
