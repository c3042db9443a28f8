package rest

import (
	"net/http"
	"time"

	"socialgraph/application/commands/bus"
	querybus "socialgraph/application/queries/bus"
	"socialgraph/infrastructure/config"
	"socialgraph/interfaces/http/rest/handlers"
	"socialgraph/interfaces/http/rest/middleware"
	"socialgraph/pkg/common"
	"socialgraph/pkg/errors"
	"socialgraph/pkg/observability"
	"socialgraph/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg        *config.Config
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	metrics    *observability.Collector
	logger     *zap.Logger
	started    time.Time
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	metrics *observability.Collector,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:        cfg,
		commandBus: commandBus,
		queryBus:   queryBus,
		metrics:    metrics,
		logger:     logger,
		started:    time.Now(),
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()
	errorHandler := errors.NewErrorHandler(rt.logger, rt.metrics, rt.cfg.IsDevelopment())

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Logger(rt.logger))
	router.Use(errorHandler.Middleware)
	if rt.cfg.EnableMetrics {
		router.Use(middleware.Metrics(rt.metrics))
	}

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: rt.cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	router.Get("/health", rt.healthCheck)
	if rt.cfg.EnableMetrics {
		router.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		writeLimit := middleware.RateLimit(rt.cfg.WriteRateLimit, errorHandler)

		personHandler := handlers.NewPersonHandler(rt.commandBus, rt.queryBus, errorHandler, rt.logger)
		r.With(writeLimit).Post("/people", personHandler.AddPerson)
		r.Get("/people/{name}", personHandler.GetPerson)

		friendshipHandler := handlers.NewFriendshipHandler(rt.commandBus, errorHandler, rt.logger)
		r.With(writeLimit).Post("/friendships", friendshipHandler.AddFriendship)

		networkHandler := handlers.NewNetworkHandler(rt.queryBus, errorHandler, rt.logger)
		r.Get("/network", networkHandler.GetNetwork)
		r.Get("/network/text", networkHandler.GetNetworkText)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": utils.NowRFC3339(),
		"uptime":    time.Since(rt.started).Round(time.Second).String(),
	})
}
