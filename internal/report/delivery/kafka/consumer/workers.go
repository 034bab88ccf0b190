package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	kafkaDelivery "reporting-srv/internal/report/delivery/kafka"
)

// handleCacheEvictMessage decodes one eviction event and delegates to the usecase.
// Malformed messages are skipped so they do not block the partition.
func (c *consumer) handleCacheEvictMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	c.l.Debugf(ctx, "report.delivery.kafka.consumer.handleCacheEvictMessage: partition %d, offset %d", msg.Partition, msg.Offset)

	var message kafkaDelivery.CacheEvictMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "report.delivery.kafka.consumer.handleCacheEvictMessage: invalid message format (skipping): %v", err)
		return nil
	}
	if message.EventType != "" && message.EventType != kafkaDelivery.EventTypeCacheEvict {
		c.l.Warnf(ctx, "report.delivery.kafka.consumer.handleCacheEvictMessage: unexpected event type %q (skipping)", message.EventType)
		return nil
	}

	output, err := c.uc.EvictCaches(ctx, toEvictCachesInput(message))
	if err != nil {
		c.l.Errorf(ctx, "report.delivery.kafka.consumer.handleCacheEvictMessage: usecase EvictCaches failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "report.delivery.kafka.consumer.handleCacheEvictMessage: event %s evicted %d report types, %d permission lists",
		message.EventID, output.ReportTypes, output.Permissions)
	return nil
}
