package producer

import (
	"reporting-srv/internal/report"
	rabbitDelivery "reporting-srv/internal/report/delivery/rabbitmq"
	"reporting-srv/pkg/log"
	pkgRabbit "reporting-srv/pkg/rabbitmq"
)

type Producer interface {
	report.Publisher
	Close() error
}

type implProducer struct {
	l        log.Logger
	ch       pkgRabbit.IChannel
	exchange string
}

// New opens a channel on conn and declares the events exchange.
func New(l log.Logger, conn pkgRabbit.IRabbitMQ, exchange string) (Producer, error) {
	if exchange == "" {
		exchange = rabbitDelivery.DefaultExchange
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if err := ch.ExchangeDeclare(rabbitDelivery.EventsExchange(exchange)); err != nil {
		_ = ch.Close()
		return nil, err
	}

	return &implProducer{
		l:        l,
		ch:       ch,
		exchange: exchange,
	}, nil
}
