package di

import (
	"context"
	"fmt"

	"socialgraph/application/commands"
	"socialgraph/application/commands/bus"
	commands_handlers "socialgraph/application/commands/handlers"
	"socialgraph/application/ports"
	"socialgraph/application/queries"
	querybus "socialgraph/application/queries/bus"
	queries_handlers "socialgraph/application/queries/handlers"
	"socialgraph/domain/core/aggregates"
	"socialgraph/domain/events"
	"socialgraph/infrastructure/config"
	"socialgraph/infrastructure/messaging"
	"socialgraph/infrastructure/persistence/memory"
	"socialgraph/pkg/observability"

	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if cfg.LogLevel != "" {
		level, err := zap.ParseAtomicLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		zapCfg.Level = level
	}

	return zapCfg.Build()
}

// ProvideMetrics creates the prometheus collector
func ProvideMetrics(cfg *config.Config) *observability.Collector {
	return observability.NewCollector("socialgraph")
}

// ProvideNetwork creates the empty network with the configured rules
func ProvideNetwork(cfg *config.Config) *aggregates.Network {
	return aggregates.NewNetworkWithConfig(cfg.DomainConfig())
}

// ProvideNetworkStore creates the in-memory network store
func ProvideNetworkStore(network *aggregates.Network) ports.NetworkStore {
	return memory.NewNetworkStore(network)
}

// ProvideEventDispatcher creates the in-process dispatcher and attaches the
// logging and metrics subscribers
func ProvideEventDispatcher(logger *zap.Logger, metrics *observability.Collector) *messaging.EventDispatcher {
	dispatcher := messaging.NewEventDispatcher(logger)
	dispatcher.SubscribeAll(messaging.LogEvents(logger))
	dispatcher.SubscribeAll(func(ctx context.Context, event events.DomainEvent) error {
		metrics.RecordEvent(event)
		return nil
	})
	return dispatcher
}

// ProvideEventPublisher exposes the dispatcher as the application's publisher port
func ProvideEventPublisher(dispatcher *messaging.EventDispatcher) ports.EventPublisher {
	return dispatcher
}

// CommandHandlerAdapter adapts specific command handlers to the generic interface
type CommandHandlerAdapter struct {
	handler func(context.Context, bus.Command) error
}

func (a *CommandHandlerAdapter) Handle(ctx context.Context, cmd bus.Command) error {
	return a.handler(ctx, cmd)
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	store ports.NetworkStore,
	publisher ports.EventPublisher,
	metrics *observability.Collector,
	logger *zap.Logger,
) (*bus.CommandBus, error) {
	commandBus := bus.NewCommandBus(
		bus.LoggingMiddleware(logger.Sugar()),
		bus.MetricsMiddleware(metrics),
	)

	addPersonHandler := commands_handlers.NewAddPersonHandler(store, publisher, logger)
	if err := commandBus.Register(commands.AddPersonCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			addCmd, ok := cmd.(commands.AddPersonCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return addPersonHandler.Handle(ctx, addCmd)
		},
	}); err != nil {
		return nil, err
	}

	addFriendshipHandler := commands_handlers.NewAddFriendshipHandler(store, publisher, logger)
	if err := commandBus.Register(commands.AddFriendshipCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			friendCmd, ok := cmd.(commands.AddFriendshipCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return addFriendshipHandler.Handle(ctx, friendCmd)
		},
	}); err != nil {
		return nil, err
	}

	return commandBus, nil
}

// QueryHandlerAdapter adapts specific query handlers to the generic interface
type QueryHandlerAdapter struct {
	handler func(context.Context, querybus.Query) (interface{}, error)
}

func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	store ports.NetworkStore,
	metrics *observability.Collector,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus(querybus.NewMetricsMiddleware(metrics))

	getPersonHandler := queries_handlers.NewGetPersonHandler(store, logger)
	if err := queryBus.Register(queries.GetPersonQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			getQuery, ok := query.(queries.GetPersonQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return getPersonHandler.Handle(ctx, getQuery)
		},
	}); err != nil {
		return nil, err
	}

	dumpHandler := queries_handlers.NewDumpNetworkHandler(store, logger)
	if err := queryBus.Register(queries.DumpNetworkQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			dumpQuery, ok := query.(queries.DumpNetworkQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return dumpHandler.Handle(ctx, dumpQuery)
		},
	}); err != nil {
		return nil, err
	}

	return queryBus, nil
}
