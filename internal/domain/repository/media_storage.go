package repository

import (
	"context"
	"io"
)

// MediaStorage - хранилище загруженных файлов
type MediaStorage interface {
	// Save записывает файл и возвращает относительный путь
	Save(ctx context.Context, path string, r io.Reader, contentType string) (string, error)

	Delete(ctx context.Context, path string) error

	// List возвращает относительные пути всех файлов под префиксом
	List(ctx context.Context, prefix string) ([]string, error)

	// URL - публичный путь к файлу относительно сайта или абсолютный адрес
	URL(path string) string
}
