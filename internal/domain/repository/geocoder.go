package repository

import (
	"context"

	"github.com/realty-catalog/internal/domain"
)

// Geocoder - поиск координат по адресу; nil без ошибки означает "не найдено"
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*domain.Point, error)
}

// GeocodeCache - постоянный кеш адрес -> координаты, промахи хранятся как nil
type GeocodeCache interface {
	Get(ctx context.Context, address string) (point *domain.Point, found bool, err error)
	Set(ctx context.Context, address string, point *domain.Point) error
	Reset(ctx context.Context) error
	Flush(ctx context.Context) error
}

// ThumbnailResolver - превью для ссылки на видео
type ThumbnailResolver interface {
	Thumbnail(ctx context.Context, videoURL string) string
}
