package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/realty-catalog/internal/domain"
)

type fakeTargets struct {
	byKind map[domain.GeocodeTargetKind][]*domain.GeocodeTarget
	set    map[int64]domain.Point
}

func (f *fakeTargets) ListMissingCoordinates(_ context.Context, kind domain.GeocodeTargetKind, limit int) ([]*domain.GeocodeTarget, error) {
	out := f.byKind[kind]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeTargets) SetCoordinates(_ context.Context, _ domain.GeocodeTargetKind, id int64, p domain.Point) error {
	f.set[id] = p
	return nil
}

type fakeGeocoder struct {
	known map[string]domain.Point
	fail  map[string]bool
	calls []string
}

func (f *fakeGeocoder) Geocode(_ context.Context, address string) (*domain.Point, error) {
	f.calls = append(f.calls, address)
	if f.fail[address] {
		return nil, fmt.Errorf("status 503")
	}
	if p, ok := f.known[address]; ok {
		return &p, nil
	}
	return nil, nil
}

type mapCache struct {
	entries map[string]*domain.Point
	flushed int
}

func (c *mapCache) Get(_ context.Context, a string) (*domain.Point, bool, error) {
	p, ok := c.entries[a]
	return p, ok, nil
}

func (c *mapCache) Set(_ context.Context, a string, p *domain.Point) error {
	c.entries[a] = p
	return nil
}

func (c *mapCache) Reset(context.Context) error {
	c.entries = map[string]*domain.Point{}
	return nil
}

func (c *mapCache) Flush(context.Context) error {
	c.flushed++
	return nil
}

func newGeocodeFixture() (*GeocodeUseCase, *fakeTargets, *fakeGeocoder, *mapCache, *[]time.Duration) {
	targets := &fakeTargets{
		byKind: map[domain.GeocodeTargetKind][]*domain.GeocodeTarget{
			domain.GeocodeResidentialComplex: {
				{ID: 1, Name: "ЖК 1", City: "Уфа", District: "Кировский", Street: "ул. Ленина"},
				{ID: 2, Name: "ЖК 2", City: "Уфа", Street: "Неизвестная"},
			},
			domain.GeocodeSecondaryProperty: {
				{ID: 10, City: "Уфа", District: "Кировский", Street: "ул. Ленина"},
			},
		},
		set: map[int64]domain.Point{},
	}
	geo := &fakeGeocoder{
		known: map[string]domain.Point{
			"Уфа, Кировский, ул. Ленина, Россия": {Lat: 54.72, Lon: 55.94},
			"Уфа, Россия":                        {Lat: 54.73, Lon: 55.95},
		},
		fail: map[string]bool{},
	}
	cache := &mapCache{entries: map[string]*domain.Point{}}

	uc := NewGeocodeUseCase(targets, geo, cache, zap.NewNop())
	var sleeps []time.Duration
	uc.sleep = func(_ context.Context, d time.Duration) error {
		sleeps = append(sleeps, d)
		return nil
	}
	return uc, targets, geo, cache, &sleeps
}

func TestGeocodeUseCase_Run(t *testing.T) {
	uc, targets, geo, cache, sleeps := newGeocodeFixture()

	res, err := uc.Run(context.Background(), GeocodeOptions{Limit: 200, Delay: time.Second})
	require.NoError(t, err)

	assert.Equal(t, &domain.GeocodeResult{Processed: 3, Updated: 3, Missed: 0, CacheHits: 1}, res)

	assert.Equal(t, domain.Point{Lat: 54.72, Lon: 55.94}, targets.set[1])
	// улица не нашлась, взят центр города
	assert.Equal(t, domain.Point{Lat: 54.73, Lon: 55.95}, targets.set[2])
	assert.Equal(t, domain.Point{Lat: 54.72, Lon: 55.94}, targets.set[10])

	assert.Equal(t, []string{
		"Уфа, Кировский, ул. Ленина, Россия",
		"Уфа, Неизвестная, Россия",
		"Уфа, Россия",
	}, geo.calls)

	// пауза только между внешними запросами
	assert.Len(t, *sleeps, 2)

	_, missCached := cache.entries["Уфа, Неизвестная, Россия"]
	assert.True(t, missCached)
	assert.Equal(t, 1, cache.flushed)
}

func TestGeocodeUseCase_DryRun(t *testing.T) {
	uc, targets, _, cache, _ := newGeocodeFixture()

	res, err := uc.Run(context.Background(), GeocodeOptions{Limit: 200, DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, 0, len(targets.set))
	assert.Equal(t, 3, res.Updated)
	assert.Empty(t, cache.entries)
}

func TestGeocodeUseCase_FailuresAreMisses(t *testing.T) {
	uc, targets, geo, _, _ := newGeocodeFixture()
	geo.fail["Уфа, Кировский, ул. Ленина, Россия"] = true
	geo.fail["Уфа, Россия"] = true

	res, err := uc.Run(context.Background(), GeocodeOptions{Limit: 1})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, 0, res.Updated)
	assert.Equal(t, 2, res.Missed)
	assert.Empty(t, targets.set)
}

func TestGeocodeUseCase_ResetCache(t *testing.T) {
	uc, _, geo, cache, _ := newGeocodeFixture()
	cache.entries["Уфа, Кировский, ул. Ленина, Россия"] = nil

	_, err := uc.Run(context.Background(), GeocodeOptions{Limit: 200, ResetCache: true})
	require.NoError(t, err)
	assert.Contains(t, geo.calls, "Уфа, Кировский, ул. Ленина, Россия")
}

func TestGeocodeUseCase_Cancelled(t *testing.T) {
	uc, _, _, cache, _ := newGeocodeFixture()
	uc.sleep = sleepContext

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Run(ctx, GeocodeOptions{Limit: 200, Delay: time.Hour})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, cache.flushed)
}

func TestFullAddress(t *testing.T) {
	assert.Equal(t, "Уфа, Дёма, ул. Правды, Россия",
		FullAddress(&domain.GeocodeTarget{City: "Уфа", District: "Дёма", Street: "ул. Правды"}))
	assert.Equal(t, "Уфа, Россия", FullAddress(&domain.GeocodeTarget{City: " Уфа "}))
	assert.Equal(t, "Россия", FullAddress(&domain.GeocodeTarget{}))
}
