package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rutvik18Verticals/ally-xs-api-sub007/common/database"
	"github.com/rutvik18Verticals/ally-xs-api-sub007/common/logger"
	commonredis "github.com/rutvik18Verticals/ally-xs-api-sub007/common/redis"
	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/config"
	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/featureflag"
	httpapi "github.com/rutvik18Verticals/ally-xs-api-sub007/internal/http"
	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/metrics"
	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/repository"
	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/service"
	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/store"
	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/timeseries"
	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/units"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const serviceName = "xspoc-data"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, serviceName)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	metrics.Init(db)

	nodesRepo := repository.NewPostgresNodesRepository(db)
	catalogRepo := repository.NewPostgresRegisterCatalogRepository(db)
	currentScanRepo := repository.NewPostgresCurrentScanRepository(db)

	relational := service.NewRelationalValueProvider(currentScanRepo)
	var influx service.CurrentValueProvider
	if cfg.Influx.Enabled() {
		client := timeseries.NewInfluxClient(timeseries.InfluxConfig{
			URL:         cfg.Influx.URL,
			Database:    cfg.Influx.Database,
			Measurement: cfg.Influx.Measurement,
			Token:       cfg.Influx.Token,
			Timeout:     cfg.Influx.Timeout(),
			RetryCount:  cfg.Influx.RetryCount,
		}, zl)
		influx = service.NewInfluxValueProvider(client)
		zl.Info("time-series store configured", zap.String("url", cfg.Influx.URL))
	}

	// Feature flags: static from config, or Redis-backed and toggleable at runtime
	static := featureflag.StaticFlags{Influx: cfg.FeatureFlags.EnableInflux}
	var flags featureflag.Flags = static
	var flagStore httpapi.FlagStore
	if cfg.FeatureFlags.Source == config.FlagSourceRedis {
		redisClient := commonredis.NewRedisClient(&cfg.Redis)
		defer commonredis.Close(redisClient)

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := commonredis.Ping(pingCtx, redisClient); err != nil {
			zl.Warn("redis unreachable, feature flags fall back to static values until it recovers", zap.Error(err))
		}
		pingCancel()

		kvFlags := featureflag.NewKVFlags(store.NewRedisKV(redisClient), cfg.FeatureFlags.Prefix, static, zl)
		flags = kvFlags
		flagStore = kvFlags
	}

	selector := service.NewSourceSelector(flags, relational, influx, zl)
	registerSvc := service.NewRegisterService(nodesRepo, catalogRepo, selector, units.NewStandardConverter(), zl)

	router := httpapi.NewRouter(zl)
	router.RegisterHealthRoutes()
	router.RegisterAssetRoutes(httpapi.NewRegisterHandler(registerSvc, zl))
	router.RegisterFeatureFlagRoutes(httpapi.NewFeatureFlagHandler(flags, flagStore, zl))
	router.HandleHandler("/metrics", promhttp.Handler())

	srv := service.NewServer(cfg.HTTP.Addr, router, zl)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		zl.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		zl.Error("http server stopped", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		zl.Warn("http server shutdown failed", zap.Error(err))
	}
}
