package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"order-webhook/internal/config"
	"order-webhook/internal/handler"
	"order-webhook/internal/logging"
	"order-webhook/internal/ports"
	"order-webhook/internal/service"
	"order-webhook/internal/stores"
)

const shutdownTimeout = 10 * time.Second

// App is the main application container.
type App struct {
	cfg    *config.AppConfig
	logger *slog.Logger
	api    *handler.APIHandler
}

// Options configures the App.
type Options struct {
	Config     *config.AppConfig
	Logger     *slog.Logger
	Catalog    *stores.Catalog
	Settings   ports.SettingsSource
	Dispatcher ports.Dispatcher
}

// New creates a new App with all dependencies injected.
func New(opts Options) *App {
	processor := service.NewProcessor(
		opts.Catalog,
		opts.Settings,
		opts.Dispatcher,
		logging.WithComponent(opts.Logger, "processor"),
	)

	return &App{
		cfg:    opts.Config,
		logger: opts.Logger,
		api:    handler.NewAPIHandler(processor, logging.WithComponent(opts.Logger, "api")),
	}
}

// Handler returns the API Gateway handler.
func (a *App) Handler() *handler.APIHandler {
	return a.api
}

// Run serves the webhook over HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + a.cfg.Server.Port,
		Handler:           handler.NewHTTPAdapter(a.api),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("server failed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
		a.logger.Info("shutting down", "reason", ctx.Err())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
