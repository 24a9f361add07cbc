package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"fooddelivery/config"
	"fooddelivery/httputil"
	"fooddelivery/logging"
	httpapi "fooddelivery/revenue-svc/internal/api/http"
	"fooddelivery/revenue-svc/internal/service"
	"fooddelivery/revenue-svc/internal/storage"
)

const serviceName = "revenue-svc"

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

// stores groups the repositories backed by one store driver.
type stores interface {
	service.UserRepository
	service.OrderRepository
	service.ChatRepository
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	// Validated by config.Load.
	location, _ := time.LoadLocation(cfg.ReportTimezone)

	store, closeStore := newStores(ctx, cfg, logger)
	defer closeStore()

	handler := httpapi.NewHandler(
		service.NewRevenueService(store, store, location, logger),
		service.NewChatService(store, store, logger),
		config.MustInitVerifier(ctx, cfg, logger),
		logger,
	)
	srv := httputil.NewServer(":"+cfg.HTTPPort, httpapi.NewRouter(handler, logger, cfg.CORSOrigins))
	return httputil.Run(ctx, srv, logger, cfg.ShutdownTimeout)
}

func newStores(ctx context.Context, cfg *config.Config, logger *zap.Logger) (stores, func()) {
	if cfg.StoreDriver == config.StorePostgres {
		db := config.MustInitPostgres(cfg.DB, logger)
		return storage.NewPostgresStore(db), func() { _ = db.Close() }
	}
	client := config.MustInitFirestore(ctx, cfg.ProjectID, logger)
	return storage.NewFirestoreStore(client), func() { _ = client.Close() }
}
