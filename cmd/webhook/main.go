package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"

	"order-webhook/internal/adapters/messaging"
	"order-webhook/internal/app"
	"order-webhook/internal/config"
	"order-webhook/internal/logging"
	"order-webhook/internal/stores"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := logging.New(logging.DefaultConfig())

	application, err := build(ctx, logger)
	if err != nil {
		os.Exit(1)
	}

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(application.Handler().Handle)
		return
	}

	if err := application.Run(ctx); err != nil {
		os.Exit(1)
	}
}

func build(ctx context.Context, logger *slog.Logger) (*app.App, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return nil, err
	}

	catalog, err := stores.Default()
	if err != nil {
		logger.Error("failed to load store catalog", "error", err)
		return nil, err
	}
	catalog = catalog.WithDefault(cfg.Stores.DefaultTag)

	var fetcher config.SecretFetcher
	if cfg.SaaS.SecretName != "" {
		sm, err := config.NewSecretsManagerClient(ctx)
		if err != nil {
			// Events report missing_env until the environment is fixed.
			logger.Error("secrets manager unavailable", "error", err)
		} else {
			fetcher = sm
		}
	}

	logger.Info("webhook initialized",
		"stores", catalog.Len(),
		"default_store", cfg.Stores.DefaultTag,
		"secret_configured", fetcher != nil,
	)

	return app.New(app.Options{
		Config:     cfg,
		Logger:     logger,
		Catalog:    catalog,
		Settings:   config.NewResolver(cfg.SaaS.SecretName, fetcher),
		Dispatcher: messaging.NewClient(cfg.SaaS.Timeout, logging.WithComponent(logger, "messaging")),
	}), nil
}
