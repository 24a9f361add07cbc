package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"fooddelivery/config"
	"fooddelivery/httputil"
	"fooddelivery/logging"
	httpapi "fooddelivery/review-svc/internal/api/http"
	"fooddelivery/review-svc/internal/service"
	"fooddelivery/review-svc/internal/storage"
)

const serviceName = "review-svc"

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("failed to load config", zap.Error(err))
	}

	logger, err := logging.New(serviceName, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		zap.NewExample().Fatal("failed to build logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("service stopped with error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("service stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	db := config.MustInitPostgres(cfg.DB, logger)
	defer db.Close()

	rdb := config.MustInitRedis(cfg.Redis, logger)
	defer rdb.Close()

	writer := config.NewKafkaWriter(cfg.Kafka, cfg.Kafka.ReviewTopic)
	defer writer.Close()

	reviews := service.NewReviewService(
		storage.NewPostgresRepository(db),
		storage.NewRedisCache(rdb, cfg.ReviewMarkerTTL),
		storage.NewKafkaPublisher(writer),
		logger,
	)

	handler := httpapi.NewHandler(reviews, config.MustInitVerifier(ctx, cfg, logger), logger)
	srv := httputil.NewServer(":"+cfg.HTTPPort, httpapi.NewRouter(handler, logger, cfg.CORSOrigins))
	return httputil.Run(ctx, srv, logger, cfg.ShutdownTimeout)
}
