package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookstore/config"
	"bookstore/controllers"
	"bookstore/database"
	"bookstore/external"
	"bookstore/logger"
	"bookstore/middleware"
	"bookstore/repositories"
	"bookstore/routes"
	"bookstore/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("order service stopped")
	}
}

// run owns every resource it opens so deferred cleanup always happens before
// main decides the exit code.
func run() error {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	base := logger.New(cfg.LogLevel, cfg.LogPretty)
	log.Logger = base
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		return fmt.Errorf("could not connect to MongoDB: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Disconnect(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := db.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("could not ensure indexes")
	}

	ext := external.NewHTTPService(external.Config{
		BookServiceURL: cfg.BookServiceURL,
		CartServiceURL: cfg.CartServiceURL,
	}, &http.Client{Timeout: cfg.HTTPClientTimeout})

	orderService := services.NewOrderService(ext, repositories.NewOrderRepo(db.Orders()))
	detailsService := services.NewCustomerDetailsService(repositories.NewCustomerDetailsRepo(db.CustomerDetails()))

	r := routes.NewRouter(routes.Handlers{
		Orders:          controllers.NewOrderController(orderService),
		CustomerDetails: controllers.NewCustomerDetailsController(detailsService),
		DB:              db,
	}, routes.Options{
		Auth: middleware.AuthConfig{
			SecretKey: cfg.JWTSecretKey,
			Issuer:    cfg.JWTIssuer,
			Audience:  cfg.JWTAudience,
		},
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         base,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("order service listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
