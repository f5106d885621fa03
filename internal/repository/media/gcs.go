package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"go.uber.org/zap"

	"github.com/realty-catalog/internal/config"
	"github.com/realty-catalog/internal/domain/repository"
)

// GCSStorage хранит файлы в бакете Cloud Storage.
// Бакет должен быть публично читаемым (uniform access, allUsers: Storage Object Viewer).
type GCSStorage struct {
	client     *storage.Client
	bucket     string
	publicBase string
	logger     *zap.Logger
}

func NewGCSStorage(ctx context.Context, cfg *config.MediaConfig, logger *zap.Logger) (*GCSStorage, error) {
	var opts []option.ClientOption
	if cfg.GCSCredentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GCSCredentials))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	logger.Info("GCS media storage configured", zap.String("bucket", cfg.GCSBucket))

	return NewGCSStorageWithClient(client, cfg.GCSBucket, cfg.GCSPublicBase, logger), nil
}

func NewGCSStorageWithClient(client *storage.Client, bucket, publicBase string, logger *zap.Logger) *GCSStorage {
	if publicBase == "" {
		publicBase = "https://storage.googleapis.com"
	}
	return &GCSStorage{
		client:     client,
		bucket:     strings.TrimSpace(bucket),
		publicBase: strings.TrimRight(publicBase, "/"),
		logger:     logger,
	}
}

var _ repository.MediaStorage = (*GCSStorage)(nil)

func (s *GCSStorage) Save(ctx context.Context, p string, r io.Reader, contentType string) (string, error) {
	key, err := cleanKey(p)
	if err != nil {
		return "", err
	}

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("upload object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize object %s: %w", key, err)
	}

	s.logger.Debug("Media object uploaded", zap.String("bucket", s.bucket), zap.String("object", key))
	return key, nil
}

func (s *GCSStorage) Delete(ctx context.Context, p string) error {
	key, err := cleanKey(p)
	if err != nil {
		return err
	}
	err = s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return err
	}
	return nil
}

func (s *GCSStorage) List(ctx context.Context, prefix string) ([]string, error) {
	it := s.client.Bucket(s.bucket).Objects(ctx, &storage.Query{Prefix: strings.TrimLeft(prefix, "/")})

	out := []string{}
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		if strings.HasSuffix(attrs.Name, "/") {
			continue
		}
		out = append(out, attrs.Name)
	}
	return out, nil
}

func (s *GCSStorage) URL(p string) string {
	if isAbsoluteURL(p) {
		return p
	}
	return s.publicBase + "/" + s.bucket + "/" + strings.TrimPrefix(p, "/")
}

func (s *GCSStorage) Close() error {
	return s.client.Close()
}
