package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/healthbridge/telemed-triage/internal/api/router"
	"github.com/healthbridge/telemed-triage/internal/chat"
	appconfig "github.com/healthbridge/telemed-triage/internal/config"
	"github.com/healthbridge/telemed-triage/internal/dataset"
	"github.com/healthbridge/telemed-triage/internal/doctors"
	"github.com/healthbridge/telemed-triage/internal/http/handlers"
	"github.com/healthbridge/telemed-triage/internal/observability/metrics"
	"github.com/healthbridge/telemed-triage/internal/triage"
	"github.com/healthbridge/telemed-triage/pkg/logging"
)

func main() {
	// .env is optional; real deployments configure via the environment.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting telemed-triage API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	triageMetrics := metrics.NewTriageMetrics(registry)

	// Reference dataset
	catalog := dataset.Load(cfg.SymptomsDatasetPath, cfg.MedicinesDatasetPath, logger.Component("dataset"))
	matcher := triage.NewKeywordMatcher(catalog, triageMetrics)

	// Doctor directory: Postgres when configured, seeded memory otherwise.
	var directory doctors.Directory
	var store chat.Store = chat.NewMemoryStore()
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to create database pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		directory = doctors.NewPostgresDirectory(pool)
		store = chat.NewPostgresStore(pool)
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory doctor directory and chat store")
		directory = doctors.NewInMemoryDirectory(doctors.SeedDoctors()...)
	}

	// Advice cache (optional)
	var adviceCache triage.AdviceCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer func() { _ = redisClient.Close() }()
		adviceCache = triage.NewRedisAdviceCache(redisClient, cfg.AdviceCacheTTL, logger.Component("advice_cache"))
	}

	// LLM providers: Gemini primary, OpenAI secondary.
	var llm triage.LLMClient
	if cfg.GeminiAPIKey != "" {
		gemini, err := triage.NewGeminiLLMClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID)
		if err != nil {
			logger.Error("failed to create Gemini client", "error", err)
			os.Exit(1)
		}
		defer func() { _ = gemini.Close() }()
		llm = gemini
	}
	if cfg.OpenAIAPIKey != "" {
		openai, err := triage.NewOpenAILLMClient(cfg.OpenAIAPIKey, cfg.OpenAIModelID)
		if err != nil {
			logger.Error("failed to create OpenAI client", "error", err)
			os.Exit(1)
		}
		if llm != nil {
			llm = triage.NewFallbackLLMClient(llm, openai, logger.Component("llm"))
		} else {
			llm = openai
		}
	}
	if llm == nil {
		logger.Warn("no LLM credentials configured, serving dataset advice only")
	}

	// Pipeline
	classifier := triage.NewSymptomClassifier(directory, cfg.DoctorLookupLimit, logger.Component("classifier"))
	advice := triage.NewAdviceGenerator(matcher, llm, adviceCache, cfg.LLMTimeout, triageMetrics, logger.Component("advice"))
	prescriber := triage.NewPrescriptionGenerator(llm, cfg.LLMTimeout, triageMetrics, logger.Component("prescription"))
	composer := triage.NewComposer(classifier, advice, matcher, prescriber, directory, logger.Component("composer"))

	r := router.New(&router.Config{
		Logger:              logger,
		TriageHandler:       handlers.NewTriageHandler(composer, store, logger.Component("chat")),
		PrescriptionHandler: handlers.NewPrescriptionHandler(composer, logger.Component("prescriptions")),
		SymptomsHandler:     handlers.NewSymptomsHandler(catalog, matcher),
		MedicinesHandler:    handlers.NewMedicinesHandler(catalog),
		ChatHistoryHandler:  handlers.NewChatHistoryHandler(store, logger.Component("history")),
		MetricsHandler:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
		StaffAuthSecret:     cfg.AuthJWTSecret,
		RateLimit:           cfg.RateLimit,
		RateLimitBurst:      cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
