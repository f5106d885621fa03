package repository

import (
	"context"

	"github.com/realty-catalog/internal/domain"
)

// ListingRepository - чтение коллекции unified_houses
type ListingRepository interface {
	// List возвращает страницу документов; search - подстрока по названию без учёта регистра
	List(ctx context.Context, search string, skip int64, limit int64) (*domain.DocumentPage, error)

	// GetByID возвращает документ по hex-идентификатору
	GetByID(ctx context.Context, id string) (domain.Document, error)

	// ListNames возвращает документы с полями названий обеих форм
	ListNames(ctx context.Context, limit int64) ([]domain.Document, error)

	Ping(ctx context.Context) error
}

// VideoRepository - видеообзоры и акции, привязанные к документу ЖК
type VideoRepository interface {
	ListByComplex(ctx context.Context, complexID string) ([]*domain.ResidentialVideo, error)
	ListPromotions(ctx context.Context, complexID string) ([]*domain.Promotion, error)
}
