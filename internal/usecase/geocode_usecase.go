package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/realty-catalog/internal/domain"
	"github.com/realty-catalog/internal/domain/repository"
)

const geocodeCountry = "Россия"

// GeocodeOptions - параметры прогона геокодера
type GeocodeOptions struct {
	Limit      int
	Delay      time.Duration
	DryRun     bool
	ResetCache bool
}

// GeocodeUseCase заполняет координаты ЖК и объектов вторички по адресу
type GeocodeUseCase struct {
	targets  repository.GeocodeTargetRepository
	geocoder repository.Geocoder
	cache    repository.GeocodeCache
	logger   *zap.Logger
	// sleep ждёт между внешними запросами; подменяется в тестах
	sleep func(ctx context.Context, d time.Duration) error
}

// NewGeocodeUseCase - создание нового GeocodeUseCase
func NewGeocodeUseCase(
	targets repository.GeocodeTargetRepository,
	geocoder repository.Geocoder,
	cache repository.GeocodeCache,
	logger *zap.Logger,
) *GeocodeUseCase {
	return &GeocodeUseCase{
		targets:  targets,
		geocoder: geocoder,
		cache:    cache,
		logger:   logger,
		sleep:    sleepContext,
	}
}

// Run обходит ЖК, затем вторичку. Промахи тоже кешируются.
func (uc *GeocodeUseCase) Run(ctx context.Context, opts GeocodeOptions) (*domain.GeocodeResult, error) {
	if opts.ResetCache {
		if err := uc.cache.Reset(ctx); err != nil {
			return nil, err
		}
	}

	result := &domain.GeocodeResult{}
	remote := 0

	for _, kind := range []domain.GeocodeTargetKind{domain.GeocodeResidentialComplex, domain.GeocodeSecondaryProperty} {
		targets, err := uc.targets.ListMissingCoordinates(ctx, kind, opts.Limit)
		if err != nil {
			return result, err
		}

		for _, t := range targets {
			point, err := uc.resolve(ctx, t, opts, &remote, result)
			if err != nil {
				uc.flush(ctx)
				return result, err
			}
			result.Processed++

			if point == nil {
				result.Missed++
				uc.logger.Debug("Address not found", zap.String("kind", string(kind)), zap.Int64("id", t.ID))
				continue
			}

			if !opts.DryRun {
				if err := uc.targets.SetCoordinates(ctx, kind, t.ID, *point); err != nil {
					uc.flush(ctx)
					return result, err
				}
			}
			result.Updated++
			uc.logger.Info("Coordinates set",
				zap.String("kind", string(kind)),
				zap.Int64("id", t.ID),
				zap.String("name", t.Name),
				zap.Float64("lat", point.Lat),
				zap.Float64("lon", point.Lon),
			)
		}
	}

	uc.flush(ctx)
	return result, nil
}

// resolve пробует полный адрес, потом только город
func (uc *GeocodeUseCase) resolve(
	ctx context.Context,
	t *domain.GeocodeTarget,
	opts GeocodeOptions,
	remote *int,
	result *domain.GeocodeResult,
) (*domain.Point, error) {
	candidates := []string{FullAddress(t)}
	if city := strings.TrimSpace(t.City); city != "" {
		candidates = append(candidates, city+", "+geocodeCountry)
	}

	var last string
	for _, address := range candidates {
		if address == last || address == geocodeCountry {
			continue
		}
		last = address

		point, found, err := uc.cache.Get(ctx, address)
		if err != nil {
			uc.logger.Warn("Geocode cache read failed", zap.String("address", address), zap.Error(err))
		}
		if found {
			result.CacheHits++
		} else {
			if *remote > 0 && opts.Delay > 0 {
				if err := uc.sleep(ctx, opts.Delay); err != nil {
					return nil, err
				}
			}
			*remote++

			point, err = uc.geocoder.Geocode(ctx, address)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				uc.logger.Warn("Geocode request failed", zap.String("address", address), zap.Error(err))
				continue
			}
			if !opts.DryRun {
				if err := uc.cache.Set(ctx, address, point); err != nil {
					uc.logger.Warn("Geocode cache write failed", zap.String("address", address), zap.Error(err))
				}
			}
		}

		if point != nil {
			return point, nil
		}
	}

	return nil, nil
}

func (uc *GeocodeUseCase) flush(ctx context.Context) {
	if err := uc.cache.Flush(ctx); err != nil {
		uc.logger.Warn("Geocode cache flush failed", zap.Error(err))
	}
}

// FullAddress - "город, район, улица, Россия" без пустых частей
func FullAddress(t *domain.GeocodeTarget) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{t.City, t.District, t.Street} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	parts = append(parts, geocodeCountry)
	return strings.Join(parts, ", ")
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
