package consumer

import (
	"context"

	kafkaDelivery "reporting-srv/internal/report/delivery/kafka"
)

func (c *consumer) ConsumeCacheEvict(ctx context.Context) error {
	group, err := c.createConsumerGroup(kafkaDelivery.ConsumerGroupCacheEvict)
	if err != nil {
		return err
	}
	c.cacheEvictGroup = group

	handler := &cacheEvictHandler{consumer: c}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.Consume(ctx, []string{kafkaDelivery.TopicCacheEvict}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", kafkaDelivery.TopicCacheEvict)
	return nil
}
