// Sleep Metrics API
//
// REST API deriving sleep metrics from wearable stage and sensor data.
//
//	@title			Sleep Metrics API
//	@version		1.0
//	@description	Derives per-night sleep metrics, hypnograms, chronotype and LLM insights from wearable stage intervals and sensor readings.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			sleep-data
//	@tag.description	Batch ingestion and listing of raw sleep data
//
//	@tag.name			sleep-metrics
//	@tag.description	Derived per-night metrics and hypnograms
//
//	@tag.name			sleep-insights
//	@tag.description	Chronotype and LLM-generated insights
package main

import (
	"context"
	"net/http"

	"github.com/nocturnelabs/sleep-metrics/internal/api"
	"github.com/nocturnelabs/sleep-metrics/internal/api/handler"
	"github.com/nocturnelabs/sleep-metrics/internal/config"
	"github.com/nocturnelabs/sleep-metrics/internal/domain"
	"github.com/nocturnelabs/sleep-metrics/internal/langfuse"
	"github.com/nocturnelabs/sleep-metrics/internal/llm"
	"github.com/nocturnelabs/sleep-metrics/internal/logger"
	"github.com/nocturnelabs/sleep-metrics/internal/repository"
	"github.com/nocturnelabs/sleep-metrics/internal/seed"
	"github.com/nocturnelabs/sleep-metrics/internal/service"
	"github.com/nocturnelabs/sleep-metrics/internal/telemetry"
	"go.uber.org/zap"
)

const serviceName = "sleep-metrics-api"

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, serviceName)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.StageInterval{}, &domain.SensorReading{}); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}
	log.Info("database migration completed")

	if cfg.Seed {
		log.Info("seeding database with sample data (SEED=true)")
		if err := seed.Run(db); err != nil {
			log.Fatal("failed to seed database", zap.Error(err))
		}
	}

	// OpenTelemetry traces ship to Langfuse when it is configured
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, serviceName)
	if err != nil {
		log.Fatal("failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	// Langfuse client for feedback scores
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	}, log)
	defer langfuseClient.Flush()

	// The insights system prompt is managed in Langfuse; fall back to the
	// built-in prompt when nothing is configured or reachable.
	systemPrompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		PromptName:  cfg.LangfusePromptName,
		PromptLabel: cfg.LangfusePromptLabel,
		SavePath:    cfg.LangfusePromptCachePath,
	}, log)
	if err != nil {
		log.Info("using built-in insights prompt", zap.Error(err))
	}

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAISleepInsightsModel, systemPrompt)
	if openaiClient == nil {
		log.Warn("OpenAI API key not configured, insights endpoint will be unavailable")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sleepDataRepo := repository.NewSleepDataRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	sleepDataService := service.NewSleepDataService(sleepDataRepo, userRepo)
	metricsService := service.NewMetricsService(sleepDataRepo, userRepo)
	chronotypeService := service.NewChronotypeService(sleepDataRepo, userRepo)
	insightsService := service.NewInsightsService(chronotypeService, metricsService, openaiClient, userRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	sleepDataHandler := handler.NewSleepDataHandler(sleepDataService)
	metricsHandler := handler.NewMetricsHandler(metricsService)
	insightsHandler := handler.NewInsightsHandler(chronotypeService, insightsService, langfuseClient)

	// Setup router
	router := api.NewRouter(userHandler, sleepDataHandler, metricsHandler, insightsHandler, log)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Info("starting server", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
