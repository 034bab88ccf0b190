package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"reporting-srv/internal/report"
	kafkaDelivery "reporting-srv/internal/report/delivery/kafka"
	rabbitDelivery "reporting-srv/internal/report/delivery/rabbitmq"
	pkgRabbit "reporting-srv/pkg/rabbitmq"
)

func (p *implProducer) PublishReportRun(ctx context.Context, event report.ReportRunEvent) error {
	msg := kafkaDelivery.ReportRunMessage{
		EventID:       event.EventID,
		EventType:     kafkaDelivery.EventTypeReportRun,
		ReportName:    event.ReportName,
		ParameterType: event.ParameterType,
		Format:        string(event.Format),
		OutputType:    event.OutputType,
		UserID:        event.UserID,
		ParamCount:    event.ParamCount,
		RanAt:         event.RanAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal report run: %w", err)
	}

	err = p.ch.Publish(ctx, pkgRabbit.PublishArgs{
		Exchange:   p.exchange,
		RoutingKey: rabbitDelivery.RoutingKeyReportRun,
		Msg: pkgRabbit.Publishing{
			ContentType: pkgRabbit.ContentTypeJSON,
			MessageId:   event.EventID,
			Timestamp:   event.RanAt,
			Body:        body,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish report run: %w", err)
	}

	p.l.Debugf(ctx, "Published report run %s to exchange %s", event.ReportName, p.exchange)
	return nil
}

func (p *implProducer) Close() error {
	return p.ch.Close()
}
