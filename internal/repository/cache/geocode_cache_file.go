package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/realty-catalog/internal/domain"
	"github.com/realty-catalog/internal/pkg/errors"
)

// FileGeocodeCache - кеш в JSON-файле. Читается при первом обращении,
// пишется целиком на Flush.
type FileGeocodeCache struct {
	path   string
	logger *zap.Logger

	mu      sync.Mutex
	loaded  bool
	dirty   bool
	entries map[string]json.RawMessage
}

func NewFileGeocodeCache(path string, logger *zap.Logger) *FileGeocodeCache {
	return &FileGeocodeCache{path: path, logger: logger}
}

func (c *FileGeocodeCache) Get(_ context.Context, address string) (*domain.Point, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.load()

	raw, ok := c.entries[address]
	if !ok {
		return nil, false, nil
	}
	point, err := decodePoint(raw)
	if err != nil {
		c.logger.Warn("Corrupted geocode cache entry", zap.String("address", address), zap.Error(err))
		return nil, false, nil
	}
	return point, true, nil
}

func (c *FileGeocodeCache) Set(_ context.Context, address string, point *domain.Point) error {
	raw, err := encodePoint(point)
	if err != nil {
		return errors.ErrCacheError.Wrap(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.load()
	c.entries[address] = raw
	c.dirty = true
	return nil
}

func (c *FileGeocodeCache) Reset(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = map[string]json.RawMessage{}
	c.loaded = true
	c.dirty = true
	return nil
}

func (c *FileGeocodeCache) Flush(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.dirty {
		return nil
	}

	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return errors.ErrCacheError.Wrap(err)
	}

	tmp := c.path + ".tmp"
	if dir := filepath.Dir(c.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.ErrCacheError.Wrap(err)
		}
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.ErrCacheError.Wrap(err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return errors.ErrCacheError.Wrap(fmt.Errorf("replace cache file: %w", err))
	}

	c.dirty = false
	c.logger.Debug("Geocode cache flushed", zap.String("path", c.path), zap.Int("entries", len(c.entries)))
	return nil
}

func (c *FileGeocodeCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
	return len(c.entries)
}

// load вызывается под мьютексом. Нечитаемый файл даёт пустой кеш.
func (c *FileGeocodeCache) load() {
	if c.loaded {
		return
	}
	c.loaded = true
	c.entries = map[string]json.RawMessage{}

	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.Warn("Failed to read geocode cache", zap.String("path", c.path), zap.Error(err))
		}
		return
	}
	if err := json.Unmarshal(data, &c.entries); err != nil {
		c.logger.Warn("Geocode cache file is corrupted, starting empty", zap.String("path", c.path), zap.Error(err))
		c.entries = map[string]json.RawMessage{}
	}
}
