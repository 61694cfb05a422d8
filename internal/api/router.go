package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/nocturnelabs/sleep-metrics/docs"
	"github.com/nocturnelabs/sleep-metrics/internal/api/handler"
	"github.com/nocturnelabs/sleep-metrics/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type Router struct {
	userHandler      *handler.UserHandler
	sleepDataHandler *handler.SleepDataHandler
	metricsHandler   *handler.MetricsHandler
	insightsHandler  *handler.InsightsHandler
	log              *zap.Logger
}

func NewRouter(
	userHandler *handler.UserHandler,
	sleepDataHandler *handler.SleepDataHandler,
	metricsHandler *handler.MetricsHandler,
	insightsHandler *handler.InsightsHandler,
	log *zap.Logger,
) *Router {
	return &Router{
		userHandler:      userHandler,
		sleepDataHandler: sleepDataHandler,
		metricsHandler:   metricsHandler,
		insightsHandler:  insightsHandler,
		log:              log,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(rt.log))
	r.Use(middleware.RequestLogger(rt.log))
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)
			r.Put("/{userId}", rt.userHandler.Update)

			// Raw sleep data (nested under users)
			r.Route("/{userId}/sleep-data", func(r chi.Router) {
				r.Post("/", rt.sleepDataHandler.Sync)
				r.Get("/", rt.sleepDataHandler.List)
			})

			// Derived views over the stored data
			r.Route("/{userId}/sleep", func(r chi.Router) {
				r.Get("/metrics", rt.metricsHandler.GetNight)
				r.Get("/hypnogram", rt.metricsHandler.GetHypnogram)
				r.Get("/chronotype", rt.insightsHandler.GetChronotype)
				r.Get("/insights", rt.insightsHandler.GetInsights)
				r.Post("/insights/feedback", rt.insightsHandler.PostFeedback)
			})
		})
	})

	return r
}
