package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"fooddelivery/config"
	"fooddelivery/httputil"
	"fooddelivery/logging"
	httpapi "fooddelivery/route-svc/internal/api/http"
	"fooddelivery/route-svc/internal/httpclient"
	"fooddelivery/route-svc/internal/mapbox"
	"fooddelivery/route-svc/internal/service"
)

const serviceName = "route-svc"

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
	if cfg.MapboxToken == "" {
		return errors.New("MAPBOX_TOKEN_SECRET is required")
	}

	handler := httpapi.NewHandler(
		service.NewDirectionsService(newMapboxClient(cfg, logger), logger),
		config.MustInitVerifier(ctx, cfg, logger),
		logger,
	)
	srv := httputil.NewServer(":"+cfg.HTTPPort, httpapi.NewRouter(handler, logger, cfg.CORSOrigins))
	return httputil.Run(ctx, srv, logger, cfg.ShutdownTimeout)
}

// newMapboxClient stacks breaker over retries over a pooled client, so one
// breaker failure is one exhausted retry sequence.
func newMapboxClient(cfg *config.Config, logger *zap.Logger) *mapbox.Client {
	clientCfg := httpclient.DefaultConfig()
	clientCfg.Timeout = cfg.MapboxTimeout

	retrying := httpclient.NewRetryClient(httpclient.NewHTTPClient(clientCfg), clientCfg)
	breaker := httpclient.NewBreakerClient(retrying, httpclient.DefaultBreakerConfig("mapbox"), logger)
	return mapbox.NewClient(breaker, cfg.MapboxBaseURL, cfg.MapboxToken)
}
