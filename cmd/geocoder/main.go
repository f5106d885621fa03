package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/realty-catalog/internal/config"
	"github.com/realty-catalog/internal/domain/repository"
	"github.com/realty-catalog/internal/infrastructure/nominatim"
	"github.com/realty-catalog/internal/pkg/logger"
	"github.com/realty-catalog/internal/repository/cache"
	"github.com/realty-catalog/internal/repository/relational"
	"github.com/realty-catalog/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	limit := pflag.Int("limit", cfg.Geocoder.Limit, "максимум записей каждого типа за прогон")
	delay := pflag.Duration("delay", cfg.Geocoder.Delay, "пауза между запросами к геокодеру")
	timeout := pflag.Duration("timeout", cfg.Geocoder.Timeout, "таймаут одного запроса")
	dryRun := pflag.Bool("dry-run", false, "не записывать координаты и кеш")
	resetCache := pflag.Bool("reset-cache", false, "очистить кеш перед запуском")
	cacheKind := pflag.String("cache", cfg.Geocoder.Cache, "кеш адресов: file или redis")
	pflag.Parse()

	log, err := logger.ForCommand(cfg.Log.Level, "geocoder")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	db, err := relational.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	geoCache, closeCache, err := newGeocodeCache(*cacheKind, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize geocode cache", zap.Error(err))
	}
	defer closeCache()

	geoCfg := cfg.Geocoder
	geoCfg.Timeout = *timeout

	uc := usecase.NewGeocodeUseCase(
		relational.NewGeocodeTargetRepository(db),
		nominatim.NewClient(&geoCfg, log),
		geoCache,
		log,
	)

	started := time.Now()
	res, err := uc.Run(ctx, usecase.GeocodeOptions{
		Limit:      *limit,
		Delay:      *delay,
		DryRun:     *dryRun,
		ResetCache: *resetCache,
	})
	if err != nil {
		log.Error("Geocoding interrupted", zap.Error(err))
	}
	if res != nil {
		log.Info("Geocoding finished",
			zap.Int("processed", res.Processed),
			zap.Int("updated", res.Updated),
			zap.Int("missed", res.Missed),
			zap.Int("cache_hits", res.CacheHits),
			zap.Bool("dry_run", *dryRun),
			zap.Duration("took", time.Since(started)),
		)
	}
	if err != nil {
		os.Exit(1)
	}
}

func newGeocodeCache(kind string, cfg *config.Config, log *zap.Logger) (repository.GeocodeCache, func(), error) {
	switch kind {
	case config.GeocoderCacheRedis:
		r, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			return nil, nil, err
		}
		return cache.NewRedisGeocodeCache(r, cfg.Geocoder.CacheKey), func() { _ = r.Close() }, nil
	case config.GeocoderCacheFile:
		return cache.NewFileGeocodeCache(cfg.Geocoder.CacheFile, log), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported cache %q", kind)
	}
}
