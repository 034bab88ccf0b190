package rabbitmq

import (
	"context"

	"reporting-srv/pkg/log"
)

// IRabbitMQ is a connection that redials after the broker closes it.
// Implementations are safe for concurrent use.
type IRabbitMQ interface {
	Close()
	IsReady() bool
	IsClosed() bool
	Channel() (IChannel, error)
}

// IChannel is a publishing channel that is recreated after a reconnect.
// Implementations are safe for concurrent use.
type IChannel interface {
	ExchangeDeclare(exc ExchangeArgs) error
	Publish(ctx context.Context, publish PublishArgs) error
	Close() error
}

// NewRabbitMQ dials url. With retryWithoutTimeout the reconnect loop after a broker close never gives up.
func NewRabbitMQ(l log.Logger, url string, retryWithoutTimeout bool) (IRabbitMQ, error) {
	conn := &connectionImpl{
		l:                   l,
		url:                 url,
		retryWithoutTimeout: retryWithoutTimeout,
	}
	if err := conn.connect(); err != nil {
		return nil, err
	}
	return conn, nil
}
