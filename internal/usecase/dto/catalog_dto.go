package dto

import (
	"time"

	"github.com/realty-catalog/internal/domain"
)

// CatalogListRequest - запрос страницы каталога
type CatalogListRequest struct {
	Page   int    `json:"page" validate:"min=1,max=100000"`
	Search string `json:"search" validate:"max=200"`
}

// CatalogListResponse - страница каталога в формате, который ждёт фронтенд
type CatalogListResponse struct {
	Complexes   []CatalogListItem `json:"complexes"`
	HasPrevious bool              `json:"has_previous"`
	HasNext     bool              `json:"has_next"`
	CurrentPage int               `json:"current_page"`
	TotalPages  int               `json:"total_pages"`
	TotalCount  int64             `json:"total_count"`
	Error       string            `json:"error,omitempty"`
}

// EmptyCatalogPage - ответ при ошибке: пустая первая страница с текстом ошибки
func EmptyCatalogPage(errMsg string) *CatalogListResponse {
	return &CatalogListResponse{
		Complexes:   []CatalogListItem{},
		CurrentPage: 1,
		Error:       errMsg,
	}
}

type CatalogListItem struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Address         string            `json:"address"`
	PriceRange      string            `json:"price_range"`
	PriceDisplay    string            `json:"price_display"`
	Photos          []string          `json:"photos"`
	ImageURL        *string           `json:"image_url"`
	Image2URL       *string           `json:"image_2_url"`
	Image3URL       *string           `json:"image_3_url"`
	Image4URL       *string           `json:"image_4_url"`
	Lat             *float64          `json:"lat"`
	Lng             *float64          `json:"lng"`
	Latitude        *float64          `json:"latitude"`
	Longitude       *float64          `json:"longitude"`
	Parameters      map[string]string `json:"parameters"`
	CompletionDate  string            `json:"completion_date"`
	HousingClass    string            `json:"housing_class"`
	HousingType     string            `json:"housing_type"`
	AvitoURL        string            `json:"avito_url"`
	DomclickURL     string            `json:"domclick_url"`
	TotalApartments int               `json:"total_apartments"`
	Location        string            `json:"location"`
	City            string            `json:"city"`
}

// ComplexDetailResponse - карточка ЖК
type ComplexDetailResponse struct {
	Complex *ComplexDetail `json:"complex"`
	Videos  []VideoItem    `json:"videos"`
	Offers  []OfferItem    `json:"offers"`
}

type ComplexDetail struct {
	domain.ListingView
	City string `json:"city"`
}

type VideoItem struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	VideoURL     string    `json:"video_url"`
	EmbedURL     string    `json:"embed_url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type OfferItem struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	ExpiresAt *time.Time `json:"expires_at"`
	ImageURL  string     `json:"image_url"`
}

// VideoObjectsResponse - список ЖК для формы видеообзоров
type VideoObjectsResponse struct {
	Success bool                 `json:"success"`
	Objects []domain.NamedObject `json:"objects"`
	Error   string               `json:"error,omitempty"`
}
