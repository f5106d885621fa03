package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/realty-catalog/internal/config"
	"github.com/realty-catalog/internal/domain/repository"
)

// S3Storage - S3-совместимое хранилище (TimeWeb Cloud и подобные), адресация path-style:
// публичная ссылка имеет вид {public_base}/{bucket}/{key}
type S3Storage struct {
	client     *s3.Client
	bucket     string
	publicBase string
	logger     *zap.Logger
}

func NewS3Storage(ctx context.Context, cfg *config.MediaConfig, logger *zap.Logger) (*S3Storage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load s3 configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
		o.UsePathStyle = true
	})

	publicBase := cfg.S3PublicBase
	if publicBase == "" {
		publicBase = cfg.S3Endpoint
	}

	logger.Info("S3 media storage configured",
		zap.String("endpoint", cfg.S3Endpoint),
		zap.String("bucket", cfg.S3Bucket),
	)

	return NewS3StorageWithClient(client, cfg.S3Bucket, publicBase, logger), nil
}

func NewS3StorageWithClient(client *s3.Client, bucket, publicBase string, logger *zap.Logger) *S3Storage {
	return &S3Storage{
		client:     client,
		bucket:     strings.TrimSpace(bucket),
		publicBase: strings.TrimRight(publicBase, "/"),
		logger:     logger,
	}
}

var _ repository.MediaStorage = (*S3Storage)(nil)

// Save читает файл целиком: подписи запроса нужен перематываемый Body
func (s *S3Storage) Save(ctx context.Context, p string, r io.Reader, contentType string) (string, error) {
	key, err := cleanKey(p)
	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(contextReader{ctx: ctx, r: r})
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	s.logger.Debug("Media object stored", zap.String("key", key), zap.Int("bytes", len(data)))
	return key, nil
}

// Delete: S3 отвечает успехом и для отсутствующего ключа
func (s *S3Storage) Delete(ctx context.Context, p string) error {
	key, err := cleanKey(p)
	if err != nil {
		return err
	}
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

func (s *S3Storage) List(ctx context.Context, prefix string) ([]string, error) {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(strings.TrimLeft(prefix, "/")),
	})

	var keys []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list objects: %w", err)
		}
		for _, obj := range page.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}
	return keys, nil
}

func (s *S3Storage) URL(p string) string {
	if isAbsoluteURL(p) {
		return p
	}
	return s.publicBase + "/" + s.bucket + "/" + strings.TrimLeft(p, "/")
}

func (s *S3Storage) Close() error {
	return nil
}
