package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"customers-be/internal/address"
	"customers-be/internal/config"
	"customers-be/internal/customer"
	"customers-be/internal/db"
	"customers-be/internal/httpapi"
	"customers-be/internal/logger"
	"customers-be/internal/middleware"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var (
	initDBFunc      = db.InitDB
	startServerFunc = func(srv *http.Server) error { return srv.ListenAndServe() }
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

// newServer wires repositories, services and handlers around the shared
// database handle.
func newServer(cfg *config.Config, database *sql.DB) http.Handler {
	customerSvc := customer.NewService(customer.NewRepository(database))
	addressSvc := address.NewService(address.NewRepository(database))

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	return httpapi.NewRouter(
		httpapi.NewHandler(customerSvc, addressSvc),
		logger.RequestIDMiddleware,
		logger.LoggingMiddleware,
		middleware.CORS(cfg.CORSOrigin),
		limiter.Middleware,
	)
}

func run(ctx context.Context) error {
	cfg := config.LoadConfig()

	if err := logger.Init(cfg); err != nil {
		return err
	}
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	if err := db.EnsureSchema(ctx, database); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           newServer(cfg, database),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- startServerFunc(srv) }()

	logger.L().Info("server running", zap.String("addr", srv.Addr))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.L().Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
