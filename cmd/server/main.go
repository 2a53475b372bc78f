package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/parceltrack/carrier-gateway/internal/api"
	"github.com/parceltrack/carrier-gateway/internal/carrier"
	"github.com/parceltrack/carrier-gateway/internal/carrier/ups"
	"github.com/parceltrack/carrier-gateway/internal/core/service"
	"github.com/parceltrack/carrier-gateway/internal/infrastructure/config"
	mongodb "github.com/parceltrack/carrier-gateway/internal/infrastructure/db/mongo"
	redisdb "github.com/parceltrack/carrier-gateway/internal/infrastructure/db/redis"
	"github.com/parceltrack/carrier-gateway/internal/infrastructure/queue"
	"github.com/parceltrack/carrier-gateway/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           Carrier Gateway API
// @version         1.0
// @description     Unified carrier tracking gateway
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Development(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	snapshots := mongodb.NewSnapshotRepository(db)
	if err := snapshots.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	cache := redisdb.NewResultCache(rdb, cfg.CacheTTL)

	// --- Carriers ---
	upsClient := ups.NewClient(ups.Config{
		BaseURL: cfg.UPS.BaseURL,
		Credentials: ups.Credentials{
			LicenseNumber: cfg.UPS.LicenseNumber,
			UserID:        cfg.UPS.UserID,
			Password:      cfg.UPS.Password,
		},
		Timeout: cfg.UPS.Timeout,
	}, log)

	registry := carrier.NewRegistry(upsClient)

	// --- Application services ---
	trackingService := service.NewTrackingService(registry, cache, snapshots, log)

	dispatcher := queue.NewDispatcher(cfg.RefreshWorkers, trackingService, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(trackingService, dispatcher, db, rdb, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting carrier gateway")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown failed")
	}
	log.Info().Msg("carrier gateway stopped")
}
