package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/modamall/backoffice/internal/app"
	"github.com/modamall/backoffice/internal/auth"
	"github.com/modamall/backoffice/internal/catalog/products"
	"github.com/modamall/backoffice/internal/catalog/reference"
	"github.com/modamall/backoffice/internal/enquiries"
	"github.com/modamall/backoffice/internal/events"
	"github.com/modamall/backoffice/internal/observability"
	"github.com/modamall/backoffice/internal/platform/db"
	"github.com/modamall/backoffice/internal/platform/objstore"
	"github.com/modamall/backoffice/internal/shared"
	"github.com/modamall/backoffice/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessionManager := shared.NewSessionManager(redisClient, cfg.SessionTTL)

	storage := objstore.NewClient(cfg.BlobStoreURL, cfg.BlobStoreBucket)
	if err := storage.Ping(ctx); err != nil {
		logger.Warn("blob store ping", slog.Any("error", err))
	}
	resolver := objstore.NewURLResolver(cfg.BlobPublicURL)

	jobClient := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := jobClient.Close(); err != nil {
			logger.Warn("job client close", slog.Any("error", err))
		}
	}()

	authRepo := auth.NewRepository(pool)
	authService := auth.NewService(authRepo, sessionManager)
	authHandler := auth.NewHandler(logger, authService)

	productRepo := products.NewRepository(pool)
	productService := products.NewService(logger, productRepo, storage, resolver)
	productService.SetCleanupEnqueuer(jobClient)
	productHandler := products.NewHandler(logger, productService)

	referenceRepo := reference.NewRepository(pool)
	referenceService := reference.NewService(referenceRepo)
	referenceHandler := reference.NewHandler(logger, referenceService)

	eventRepo := events.NewRepository(pool)
	eventService := events.NewService(eventRepo)
	eventHandler := events.NewHandler(logger, eventService)

	enquiryRepo := enquiries.NewRepository(pool)
	enquiryService := enquiries.NewService(enquiryRepo)
	enquiryHandler := enquiries.NewHandler(logger, enquiryService)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		SessionManager:   sessionManager,
		AuthHandler:      authHandler,
		ProductHandler:   productHandler,
		ReferenceHandler: referenceHandler,
		EventHandler:     eventHandler,
		EnquiryHandler:   enquiryHandler,
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
