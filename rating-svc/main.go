package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"fooddelivery/config"
	"fooddelivery/httputil"
	"fooddelivery/logging"
	httpapi "fooddelivery/rating-svc/internal/api/http"
	"fooddelivery/rating-svc/internal/service"
	"fooddelivery/rating-svc/internal/storage"
)

const serviceName = "rating-svc"

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
	store, closeStore := newRatingStore(ctx, cfg, logger)
	defer closeStore()

	rdb := config.MustInitRedis(cfg.Redis, logger)
	defer rdb.Close()
	cache := storage.NewRedisCache(rdb)

	aggregator := service.NewAggregator(store, cache, logger)
	dispatcher := service.NewDispatcher(aggregator, logger)
	reader := service.NewRatingReader(store, cache, service.ReviewLinkQR{BaseURL: cfg.ReviewBaseURL}, logger)

	kafkaReader := config.NewKafkaReader(cfg.Kafka, cfg.Kafka.ReviewTopic, cfg.Kafka.GroupID)
	defer kafkaReader.Close()
	consumer := service.NewConsumer(kafkaReader, dispatcher, logger)

	handler := httpapi.NewHandler(reader, dispatcher, cfg.EventPushToken, logger)
	srv := httputil.NewServer(":"+cfg.HTTPPort, httpapi.NewRouter(handler, logger, cfg.CORSOrigins))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return consumer.Start(gctx) })
	g.Go(func() error { return httputil.Run(gctx, srv, logger, cfg.ShutdownTimeout) })
	return g.Wait()
}

// newRatingStore picks the document store for STORE_DRIVER.
func newRatingStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (service.RatingStore, func()) {
	if cfg.StoreDriver == config.StorePostgres {
		db := config.MustInitPostgres(cfg.DB, logger)
		return storage.NewPostgresStore(db), func() { _ = db.Close() }
	}
	client := config.MustInitFirestore(ctx, cfg.ProjectID, logger)
	return storage.NewFirestoreStore(client), func() { _ = client.Close() }
}
