package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/boltdash/driver-dashboard/internal/api"
	"github.com/boltdash/driver-dashboard/internal/infrastructure/config"
	mongodb "github.com/boltdash/driver-dashboard/internal/infrastructure/db/mongo"
	redisdb "github.com/boltdash/driver-dashboard/internal/infrastructure/db/redis"
	"github.com/boltdash/driver-dashboard/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Driver Dashboard API
// @version      1.0
// @description  Authentication, profile, expense and dashboard endpoints for the driver performance dashboard.
// @BasePath     /
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "driver-dashboard",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	if err := mongodb.NewCredentialRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("credential indexes failed")
	}
	if err := mongodb.NewExpenseRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("expense indexes failed")
	}

	e := api.NewRouter(cfg, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
