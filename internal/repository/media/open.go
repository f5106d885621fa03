package media

import (
	"context"

	"go.uber.org/zap"

	"github.com/realty-catalog/internal/config"
	"github.com/realty-catalog/internal/domain/repository"
)

// Backend - хранилище файлов вместе с закрытием клиента
type Backend interface {
	repository.MediaStorage
	Close() error
}

// Open выбирает хранилище по MEDIA_BACKEND. Клиент живёт дольше вызова,
// поэтому отмена и дедлайн ctx на него не переносятся.
func Open(ctx context.Context, cfg *config.MediaConfig, logger *zap.Logger) (Backend, error) {
	ctx = context.WithoutCancel(ctx)

	var (
		backend Backend
		err     error
	)
	switch cfg.Backend {
	case config.MediaBackendGCS:
		backend, err = NewGCSStorage(ctx, cfg, logger)
	case config.MediaBackendS3:
		backend, err = NewS3Storage(ctx, cfg, logger)
	default:
		backend, err = newLocalStorage(cfg.Root, cfg.URLPrefix, logger)
	}
	if err != nil {
		return nil, err
	}
	return backend, nil
}
