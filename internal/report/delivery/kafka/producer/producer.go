package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"reporting-srv/internal/report"
	kafkaDelivery "reporting-srv/internal/report/delivery/kafka"
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

	if err := p.producer.Publish([]byte(event.ReportName), body); err != nil {
		return fmt.Errorf("failed to publish report run: %w", err)
	}

	p.l.Debugf(ctx, "Published report run %s to %s", event.ReportName, p.producer.Topic())
	return nil
}
