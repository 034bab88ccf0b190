package consumer

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
)

type cacheEvictHandler struct {
	consumer *consumer
}

func (h *cacheEvictHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *cacheEvictHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim stops at the first message the usecase fails on. Marking a later message would
// commit past it, so the session ends instead and the partition resumes from the failed offset.
func (h *cacheEvictHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleCacheEvictMessage(session.Context(), msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "report.delivery.kafka.consumer.ConsumeCacheEvict: failed to process message: %v", err)
			return fmt.Errorf("partition %d offset %d: %w", msg.Partition, msg.Offset, err)
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
