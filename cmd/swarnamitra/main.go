package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	smhttp "github.com/TheRanomial/SwarnaMitra-Backend/internal/adapter/http"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/adapter/metals"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/adapter/openai"
	smotel "github.com/TheRanomial/SwarnaMitra-Backend/internal/adapter/otel"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/adapter/ristretto"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/advisor"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/config"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/logger"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/middleware"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/resilience"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/service"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/tool"
)

func main() {
	boot := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(boot)

	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	slog.SetDefault(logger.New(cfg.Logging))
	slog.Info("config loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Logging.Level,
		"model", cfg.OpenAI.Model,
	)

	ctx := context.Background()

	// --- Observability ---
	otelShutdown, err := smotel.Setup(ctx, smotel.Config{
		Enabled:  cfg.Otel.Enabled,
		Endpoint: cfg.Otel.Endpoint,
		Service:  cfg.Logging.Service,
	})
	if err != nil {
		return fmt.Errorf("otel: %w", err)
	}
	defer func() {
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shCtx); err != nil {
			slog.Warn("otel shutdown", "error", err)
		}
	}()

	metrics, err := smotel.NewMetrics()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	// --- Infrastructure ---
	quoteCache, err := ristretto.New(cfg.Cache.MaxSizeMB * 1024 * 1024)
	if err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	defer quoteCache.Close()

	metalsClient := metals.NewClient(cfg.Metals.BaseURL, cfg.Metals.APIKey)
	metalsClient.SetBreaker(resilience.NewBreaker(cfg.Breaker.MaxFailures, cfg.Breaker.Timeout))
	quotes := metals.NewCachedSource(metalsClient, quoteCache, cfg.Cache.QuoteTTL)

	assistantClient := openai.NewClient(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, nil)
	assistantClient.SetBreaker(resilience.NewBreaker(cfg.Breaker.MaxFailures, cfg.Breaker.Timeout))

	// --- Tools ---
	catalog := advisor.Catalog(advisor.Deps{Quotes: quotes})
	registry, err := tool.NewRegistry(catalog...)
	if err != nil {
		return fmt.Errorf("tool registry: %w", err)
	}
	slog.Info("tool registry built", "tools", len(registry.Names()))

	// --- Chat service ---
	chat := service.NewChatService(assistantClient, registry, service.DriverConfig{
		PollInterval:     cfg.Runner.PollInterval,
		MaxPolls:         cfg.Runner.MaxPolls,
		MaxActionCycles:  cfg.Runner.MaxActionCycles,
		RunDeadline:      cfg.Runner.RunDeadline,
		MaxParallelTools: cfg.Runner.MaxParallelTools,
	}, metrics)

	bootCtx, cancelBoot := context.WithTimeout(ctx, 60*time.Second)
	defer cancelBoot()
	if err := chat.Bootstrap(bootCtx, service.BootstrapRequest{
		Model:        cfg.OpenAI.Model,
		Name:         "SwarnaMitra",
		Instructions: advisor.Instructions,
		Tools:        catalog,
	}); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	// --- HTTP ---
	handlers := &smhttp.Handlers{
		Chat:       chat,
		RemoteBase: cfg.OpenAI.BaseURL,
	}

	r := chi.NewRouter()
	r.Use(smhttp.CORS(cfg.Server.CORSOrigin))
	r.Use(middleware.RequestID)
	r.Use(smhttp.Logger)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(3 * time.Minute))
	if cfg.Otel.Enabled {
		r.Use(smotel.HTTPMiddleware(cfg.Logging.Service))
	}

	smhttp.MountRoutes(r, handlers)

	addr := ":" + cfg.Server.Port

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      3 * time.Minute,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-done
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
