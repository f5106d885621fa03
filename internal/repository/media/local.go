package media

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/realty-catalog/internal/domain/repository"
)

// LocalStorage хранит файлы в MEDIA_ROOT, раздаются они по префиксу MEDIA_URL
type LocalStorage struct {
	root      string
	urlPrefix string
	logger    *zap.Logger
}

func NewLocalStorage(root, urlPrefix string, logger *zap.Logger) (repository.MediaStorage, error) {
	return newLocalStorage(root, urlPrefix, logger)
}

func newLocalStorage(root, urlPrefix string, logger *zap.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media root: %w", err)
	}
	return &LocalStorage{
		root:      root,
		urlPrefix: urlPrefix,
		logger:    logger,
	}, nil
}

func (s *LocalStorage) Save(ctx context.Context, p string, r io.Reader, _ string) (string, error) {
	rel, err := cleanKey(p)
	if err != nil {
		return "", err
	}
	full := filepath.Join(s.root, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, contextReader{ctx: ctx, r: r}); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write media file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close media file: %w", err)
	}
	if err := os.Rename(tmp.Name(), full); err != nil {
		return "", fmt.Errorf("move media file: %w", err)
	}

	s.logger.Debug("Media file saved", zap.String("path", rel))
	return rel, nil
}

func (s *LocalStorage) Delete(_ context.Context, p string) error {
	rel, err := cleanKey(p)
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *LocalStorage) List(ctx context.Context, prefix string) ([]string, error) {
	dir := filepath.Join(s.root, filepath.FromSlash(strings.Trim(prefix, "/")))
	out := []string{}

	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *LocalStorage) URL(p string) string {
	if isAbsoluteURL(p) {
		return p
	}
	return s.urlPrefix + strings.TrimPrefix(p, "/")
}

func (s *LocalStorage) Close() error {
	return nil
}

// cleanKey нормализует относительный путь и не даёт выйти за пределы корня
func cleanKey(p string) (string, error) {
	rel := path.Clean("/" + strings.ReplaceAll(p, "\\", "/"))
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" || rel == "." {
		return "", fmt.Errorf("empty media path")
	}
	return rel, nil
}

func isAbsoluteURL(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}

// contextReader прерывает копирование при отмене запроса
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
