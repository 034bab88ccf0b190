package rabbitmq

import pkgRabbit "reporting-srv/pkg/rabbitmq"

const (
	DefaultExchange     = "reporting.events"
	RoutingKeyReportRun = "report.run"
)

// EventsExchange declares a durable topic exchange named name.
func EventsExchange(name string) pkgRabbit.ExchangeArgs {
	return pkgRabbit.ExchangeArgs{
		Name:    name,
		Type:    pkgRabbit.ExchangeTypeTopic,
		Durable: true,
	}
}
