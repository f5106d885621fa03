package repository

import (
	"context"

	"github.com/realty-catalog/internal/domain"
)

// GalleryRepository определяет методы для работы с таблицей галереи
type GalleryRepository interface {
	// Create сохраняет элемент; при is_main снимает флаг с остальных элементов владельца
	Create(ctx context.Context, item *domain.GalleryItem) error

	GetByID(ctx context.Context, id int64) (*domain.GalleryItem, error)

	// List возвращает элементы владельца по order, затем по created_at
	List(ctx context.Context, filter domain.GalleryFilter) ([]*domain.GalleryItem, error)

	// Update применяет патч; is_main=true снимает флаг с соседей в той же транзакции
	Update(ctx context.Context, id int64, patch domain.GalleryPatch) (*domain.GalleryItem, error)

	Delete(ctx context.Context, id int64) error

	// ClearMain снимает is_main со всех элементов владельца
	ClearMain(ctx context.Context, owner domain.OwnerRef) error

	// ImagePaths возвращает пути файлов, на которые ссылаются элементы
	ImagePaths(ctx context.Context) ([]string, error)

	// ListVideosForCleanup возвращает видео с пустым url или кодом iframe
	ListVideosForCleanup(ctx context.Context) ([]*domain.GalleryItem, error)
}

// OwnerRepository разрешает имена владельцев по типу
type OwnerRepository interface {
	// ListOwners возвращает {id, name} всех сущностей типа, имя берётся из поля-метки
	ListOwners(ctx context.Context, kind domain.OwnerKind) ([]domain.Owner, error)
}

// GeocodeTargetRepository - записи без координат и сохранение найденных
type GeocodeTargetRepository interface {
	ListMissingCoordinates(ctx context.Context, kind domain.GeocodeTargetKind, limit int) ([]*domain.GeocodeTarget, error)
	SetCoordinates(ctx context.Context, kind domain.GeocodeTargetKind, id int64, point domain.Point) error
}
