package di

import (
	"socialgraph/application/commands/bus"
	"socialgraph/application/ports"
	querybus "socialgraph/application/queries/bus"
	"socialgraph/infrastructure/config"
	"socialgraph/infrastructure/messaging"
	"socialgraph/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Metrics    *observability.Collector
	Store      ports.NetworkStore
	Dispatcher *messaging.EventDispatcher
	CommandBus *bus.CommandBus
	QueryBus   *querybus.QueryBus
}

// Close flushes buffered log entries
func (c *Container) Close() error {
	return c.Logger.Sync()
}
