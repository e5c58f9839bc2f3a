package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/komekomeaaa/tarot/internal/adapters/decks"
	httpadapter "github.com/komekomeaaa/tarot/internal/adapters/http"
	"github.com/komekomeaaa/tarot/internal/adapters/memory"
	"github.com/komekomeaaa/tarot/internal/adapters/redisstore"
	"github.com/komekomeaaa/tarot/internal/app"
	"github.com/komekomeaaa/tarot/internal/domain"
	"github.com/komekomeaaa/tarot/internal/ports"
	"github.com/komekomeaaa/tarot/internal/reading"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	_ = viper.BindPFlag("http_addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	store := decks.NewEmbeddedStore()
	catalog, err := store.Catalog(cmd.Context())
	if err != nil {
		return err
	}

	rng := domain.NewGlobalRNG()
	composer := reading.NewComposer(catalog, rng, reading.WithLimits(cfg.Limits))

	var (
		sessions ports.SessionStore
		usage    ports.UsageLimiter
		checks   []httpadapter.HealthCheck
	)
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		opts := redisstore.Options{SessionTTL: cfg.Session.TTL}
		sessions = redisstore.NewSessionStore(client, opts)
		if cfg.Usage.Enabled {
			usage = redisstore.NewUsageLimiter(client, opts)
		}
		checks = append(checks, func(ctx context.Context) error { return redisstore.Ping(ctx, client) })
		logger.Info("using redis stores", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
	} else {
		sessions = memory.NewSessionStore(cfg.Session.TTL)
		if cfg.Usage.Enabled {
			usage = memory.NewUsageLimiter()
		}
		logger.Info("using in-memory stores")
	}

	svc := app.NewReadingService(store, composer, sessions, usage, rng, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(svc, checks...)
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr)
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	return nil
}
