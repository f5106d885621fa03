package dto

import (
	"io"
	"time"

	"github.com/realty-catalog/internal/domain"
)

// UploadedFile - файл из multipart-запроса
type UploadedFile struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// UploadRequest - загрузка пачки изображений (drag&drop или массовая)
type UploadRequest struct {
	Category string         `validate:"required"`
	ObjectID string         `validate:"required"`
	Files    []UploadedFile `validate:"-"`
	// Bulk - заголовок берётся из имени файла вместо "Изображение N"
	Bulk bool
}

type UploadResponse struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	Errors  []string `json:"errors,omitempty"`
}

type GetObjectsResponse struct {
	Success bool           `json:"success"`
	Objects []domain.Owner `json:"objects"`
}

type GetContentRequest struct {
	Category    string `validate:"required"`
	ObjectID    string `validate:"required"`
	ContentType string `validate:"required"`
	// BaseURL - публичный адрес сайта, к нему приклеиваются относительные пути файлов
	BaseURL string
}

type GetContentResponse struct {
	Success bool              `json:"success"`
	Items   []GalleryItemView `json:"items"`
}

// GalleryItemView - элемент галереи для back-office
type GalleryItemView struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ContentType  string    `json:"content_type"`
	Order        int       `json:"order"`
	IsMain       bool      `json:"is_main"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	ImageURL     *string   `json:"image_url"`
	VideoURL     string    `json:"video_url"`
	EmbedURL     string    `json:"embed_url,omitempty"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
}

// SaveContentRequest - сохранение изображений с подписями или одного видео
type SaveContentRequest struct {
	Category             string `validate:"required"`
	ObjectID             string `validate:"required"`
	ContentType          string `validate:"required"`
	Files                []UploadedFile
	Titles               []string
	Descriptions         []string
	TransliteratedTitles []string
	IsMain               map[int]bool
	VideoURL             string
}

type SaveContentResponse struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	IDs     []int64  `json:"ids"`
	Errors  []string `json:"errors,omitempty"`
}

// UpdateContentRequest - nil поля не меняются
type UpdateContentRequest struct {
	ID          int64   `json:"id" form:"id" validate:"gt=0"`
	Title       *string `json:"title" form:"title" validate:"omitempty,max=200"`
	Description *string `json:"description" form:"description"`
	VideoURL    *string `json:"video_url" form:"video_url"`
	IsMain      *bool   `json:"is_main" form:"is_main"`
	BaseURL     string  `json:"-" form:"-"`
}

type DeleteContentRequest struct {
	ID         int64 `json:"id" form:"id" validate:"gt=0"`
	RemoveFile bool  `json:"remove_file" form:"remove_file"`
}

// FlagResponse - {"success": true} для операций без данных
type FlagResponse struct {
	Success bool `json:"success"`
}

type UpdateContentResponse struct {
	Success bool            `json:"success"`
	Item    GalleryItemView `json:"item"`
}
