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

	"github.com/muhammadchandra19/marketfeed/internal/bootstrap"
	"github.com/muhammadchandra19/marketfeed/internal/config"
	"github.com/muhammadchandra19/marketfeed/pkg/httplib/healthcheck"
	"github.com/muhammadchandra19/marketfeed/pkg/logger"
	"github.com/muhammadchandra19/marketfeed/pkg/questdb"
	"github.com/muhammadchandra19/marketfeed/pkg/redis"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(logger.WithLoggingLevel(logger.ParseLevel(cfg.App.LogLevel)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error(err, logger.NewField("action", "run"))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient := redis.NewClient(log, &cfg.Redis)
	if err := redisClient.Connect(ctx); err != nil {
		log.Error(err, logger.NewField("action", "connect_redis"))
		if !redisClient.Reconnect(ctx) {
			return err
		}
	}

	var questdbClient questdb.QuestDBClient
	if cfg.QuestDB.Enabled {
		client, err := questdb.NewClient(ctx, cfg.QuestDB.Config)
		if err != nil {
			_ = redisClient.Disconnect(ctx)
			return err
		}
		questdbClient = client
	}

	app, err := (&bootstrap.Bootstrap{}).Init(bootstrap.BootstrapConfig{
		Config:  cfg,
		Logger:  log,
		Redis:   redisClient,
		QuestDB: questdbClient,
	})
	if err != nil {
		return err
	}
	defer app.Close(context.Background())

	if err := app.Usecase.Registry.Load(ctx); err != nil {
		return err
	}
	go func() {
		if err := app.Usecase.Registry.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error(err, logger.NewField("action", "watch_products"))
		}
	}()

	checks := map[string]healthcheck.Checker{"redis": redisClient.Ping}
	if questdbClient != nil {
		checks["questdb"] = questdbClient.Ping
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", app.Metrics.Handler())
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           healthcheck.HealthCheck{Checks: checks, Timeout: 2 * time.Second}.Handler(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("HTTP server listening", logger.NewField("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(err, logger.NewField("action", "serve_http"))
		}
	}()

	if err := app.Engine.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	log.Info("Shutting down marketfeed")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Engine.Stop(shutdownCtx); err != nil {
		log.Error(err, logger.NewField("action", "stop_engine"))
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(err, logger.NewField("action", "shutdown_http"))
	}

	log.Info("Marketfeed stopped")
	return nil
}
