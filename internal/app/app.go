package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/grocito/grocito/internal/config"
	"github.com/grocito/grocito/internal/policy"
	"github.com/grocito/grocito/internal/repository/cart"
	"github.com/grocito/grocito/internal/repository/gateway"
	"github.com/grocito/grocito/internal/repository/pg"
	"github.com/grocito/grocito/internal/service"
	"github.com/grocito/grocito/pgk/logger"

	httpController "github.com/grocito/grocito/internal/controller/http"
)

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	paymentGateway := gateway.New(cfg.GatewayAddress)

	storage, err := pg.New(cfg.DatabaseURI, lg, paymentGateway)
	if err != nil {
		return err
	}

	carts := cart.New()
	calc := policy.NewCalculator(cfg.FeePolicy(), cfg.EarningsPolicy(), cfg.BonusClock)

	s := service.New(
		storage,
		carts,
		paymentGateway,
		calc,
		cfg.CancellationPolicy(),
		cfg.PassCost,
		cfg.TokenLifetime,
		cfg.SecretKey,
	)

	router := chi.NewRouter()
	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)

	handlers := httpController.New(s, storage, lg)
	router = httpController.InitRoutes(router, handlers, cfg.SecretKey)

	srv := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: router,
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go storage.RunPaymentStatusUpdater()

	lg.Infof("starting server on %s", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalf("server ListenAndServe error: %v", err)
		}
	}()

	<-signalCtx.Done()
	lg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown (server) error: %v", err)
	}

	storage.StopPaymentStatusUpdater()

	if err := storage.Shutdown(); err != nil {
		return fmt.Errorf("shutdown (repo) error: %v", err)
	}

	lg.Info("server shutdown success")
	return nil
}
