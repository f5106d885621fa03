package usecase_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/realty-catalog/internal/domain"
)

// MockListingRepository is a mock of ListingRepository
type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) List(ctx context.Context, search string, skip, limit int64) (*domain.DocumentPage, error) {
	args := m.Called(ctx, search, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentPage), args.Error(1)
}

func (m *MockListingRepository) GetByID(ctx context.Context, id string) (domain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Document), args.Error(1)
}

func (m *MockListingRepository) ListNames(ctx context.Context, limit int64) ([]domain.Document, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockListingRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockVideoRepository is a mock of VideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) ListByComplex(ctx context.Context, complexID string) ([]*domain.ResidentialVideo, error) {
	args := m.Called(ctx, complexID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ResidentialVideo), args.Error(1)
}

func (m *MockVideoRepository) ListPromotions(ctx context.Context, complexID string) ([]*domain.Promotion, error) {
	args := m.Called(ctx, complexID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Promotion), args.Error(1)
}

// MockGalleryRepository is a mock of GalleryRepository
type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) Create(ctx context.Context, item *domain.GalleryItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockGalleryRepository) GetByID(ctx context.Context, id int64) (*domain.GalleryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) List(ctx context.Context, filter domain.GalleryFilter) ([]*domain.GalleryItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) Update(ctx context.Context, id int64, patch domain.GalleryPatch) (*domain.GalleryItem, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGalleryRepository) ClearMain(ctx context.Context, owner domain.OwnerRef) error {
	return m.Called(ctx, owner).Error(0)
}

func (m *MockGalleryRepository) ImagePaths(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGalleryRepository) ListVideosForCleanup(ctx context.Context) ([]*domain.GalleryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.GalleryItem), args.Error(1)
}

// MockOwnerRepository is a mock of OwnerRepository
type MockOwnerRepository struct {
	mock.Mock
}

func (m *MockOwnerRepository) ListOwners(ctx context.Context, kind domain.OwnerKind) ([]domain.Owner, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Owner), args.Error(1)
}

// MockMediaStorage is a mock of MediaStorage
type MockMediaStorage struct {
	mock.Mock
}

func (m *MockMediaStorage) Save(ctx context.Context, path string, r io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, path, r, contentType)
	if fn, ok := args.Get(0).(func(context.Context, string, io.Reader, string) string); ok {
		return fn(ctx, path, r, contentType), args.Error(1)
	}
	return args.String(0), args.Error(1)
}

func (m *MockMediaStorage) Delete(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

func (m *MockMediaStorage) List(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockMediaStorage) URL(path string) string {
	return "/media/" + path
}

// stubThumbs отдаёт превью по фиксированной таблице
type stubThumbs map[string]string

func (s stubThumbs) Thumbnail(_ context.Context, videoURL string) string {
	return s[videoURL]
}

// MockGeocodeTargetRepository is a mock of GeocodeTargetRepository
type MockGeocodeTargetRepository struct {
	mock.Mock
}

func (m *MockGeocodeTargetRepository) ListMissingCoordinates(ctx context.Context, kind domain.GeocodeTargetKind, limit int) ([]*domain.GeocodeTarget, error) {
	args := m.Called(ctx, kind, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.GeocodeTarget), args.Error(1)
}

func (m *MockGeocodeTargetRepository) SetCoordinates(ctx context.Context, kind domain.GeocodeTargetKind, id int64, point domain.Point) error {
	return m.Called(ctx, kind, id, point).Error(0)
}

// MockGeocoder is a mock of Geocoder
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (*domain.Point, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Point), args.Error(1)
}

// memoryCache - GeocodeCache в памяти
type memoryCache struct {
	entries map[string]*domain.Point
	flushes int
	resets  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]*domain.Point{}}
}

func (c *memoryCache) Get(_ context.Context, address string) (*domain.Point, bool, error) {
	p, ok := c.entries[address]
	return p, ok, nil
}

func (c *memoryCache) Set(_ context.Context, address string, point *domain.Point) error {
	c.entries[address] = point
	return nil
}

func (c *memoryCache) Reset(context.Context) error {
	c.entries = map[string]*domain.Point{}
	c.resets++
	return nil
}

func (c *memoryCache) Flush(context.Context) error {
	c.flushes++
	return nil
}

// doc собирает упорядоченный документ из пар ключ-значение
func doc(kv ...any) domain.Document {
	d := make(domain.Document, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		d = append(d, domain.Field{Key: kv[i].(string), Value: kv[i+1]})
	}
	return d
}

func ptrString(s string) *string { return &s }

func ptrBool(b bool) *bool { return &b }
