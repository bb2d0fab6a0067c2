package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gridscout/scout-api/internal/config"
	"github.com/gridscout/scout-api/internal/grid"
	"github.com/gridscout/scout-api/internal/handlers"
	"github.com/gridscout/scout-api/internal/insights"
	"github.com/gridscout/scout-api/internal/logic"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// Redis is optional: without it the GRID client just skips caching.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			sugar.Fatalw("Invalid REDIS_URL", "error", err)
		}
		redisClient = redis.NewClient(opts)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			sugar.Warnw("Redis unreachable, continuing without cache", "error", err)
			redisClient = nil
		}
	}

	gridClient := grid.NewClient(grid.ClientConfig{
		BaseURL:  cfg.GridAPIURL,
		APIKey:   cfg.GridAPIKey,
		Timeout:  cfg.GridTimeout,
		CacheTTL: cfg.CacheTTL,
		Redis:    redisClient,
		Logger:   logger,
	})

	handlerCfg := handlers.Config{
		Provider:          gridClient,
		Assembler:         logic.NewReportAssembler(logger),
		Redis:             redisClient,
		Logger:            logger,
		DefaultWindowDays: cfg.DefaultWindow,
		MaxWindowDays:     cfg.MaxTimeWindow,
	}
	if gen := insights.NewGenerator(insights.GeneratorConfig{
		APIKey: cfg.AnthropicAPIKey,
		Model:  cfg.AnthropicModel,
		Logger: logger,
	}); gen != nil {
		handlerCfg.Insights = gen
		sugar.Infow("AI insights enabled", "model", cfg.AnthropicModel)
	} else {
		sugar.Info("AI insights disabled (no ANTHROPIC_API_KEY)")
	}

	h := handlers.New(handlerCfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h.Routes(cfg.AllowedOrigins),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		sugar.Infow("Server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sugar.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		sugar.Errorw("Shutdown error", "error", err)
	}
	if redisClient != nil {
		redisClient.Close()
	}
	sugar.Info("Server stopped")
}
