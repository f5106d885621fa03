package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/realty-catalog/internal/domain"
	"github.com/realty-catalog/internal/domain/repository"
	"github.com/realty-catalog/internal/pkg/errors"
	"github.com/realty-catalog/internal/pkg/utils"
)

// CleanupResult - итог очистки видео в галерее
type CleanupResult struct {
	Pruned    int `json:"pruned"`
	Rewritten int `json:"rewritten"`
	Skipped   int `json:"skipped"`
}

// GalleryCleanupUseCase удаляет видео без ссылки и заменяет коды iframe на src
type GalleryCleanupUseCase struct {
	galleryRepo repository.GalleryRepository
	media       repository.MediaStorage
	logger      *zap.Logger
}

// NewGalleryCleanupUseCase - media может быть nil, тогда поиск осиротевших файлов недоступен
func NewGalleryCleanupUseCase(
	galleryRepo repository.GalleryRepository,
	media repository.MediaStorage,
	logger *zap.Logger,
) *GalleryCleanupUseCase {
	return &GalleryCleanupUseCase{galleryRepo: galleryRepo, media: media, logger: logger}
}

func (uc *GalleryCleanupUseCase) Run(ctx context.Context, dryRun bool) (*CleanupResult, error) {
	items, err := uc.galleryRepo.ListVideosForCleanup(ctx)
	if err != nil {
		return nil, err
	}

	result := &CleanupResult{}

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		raw := strings.TrimSpace(item.VideoURL)

		if raw == "" {
			uc.logger.Info("Pruning video without url", zap.Int64("id", item.ID), zap.String("title", item.Title))
			if !dryRun {
				if err := uc.galleryRepo.Delete(ctx, item.ID); err != nil {
					return result, err
				}
			}
			result.Pruned++
			continue
		}

		src, ok := utils.ExtractIframeSrc(raw)
		if !ok {
			uc.logger.Warn("Cannot extract src from iframe", zap.Int64("id", item.ID))
			result.Skipped++
			continue
		}

		uc.logger.Info("Rewriting iframe video url", zap.Int64("id", item.ID), zap.String("src", src))
		if !dryRun {
			if _, err := uc.galleryRepo.Update(ctx, item.ID, domain.GalleryPatch{VideoURL: &src}); err != nil {
				return result, err
			}
		}
		result.Rewritten++
	}

	return result, nil
}

// SweepOrphans удаляет файлы под gallery/, на которые не ссылается ни один элемент.
// Возвращает количество найденных (в dry-run) или удалённых файлов.
func (uc *GalleryCleanupUseCase) SweepOrphans(ctx context.Context, dryRun bool) (int, error) {
	if uc.media == nil {
		return 0, nil
	}

	referenced, err := uc.galleryRepo.ImagePaths(ctx)
	if err != nil {
		return 0, err
	}
	keep := make(map[string]struct{}, len(referenced))
	for _, p := range referenced {
		keep[strings.TrimPrefix(p, "/")] = struct{}{}
	}

	stored, err := uc.media.List(ctx, galleryMediaPrefix)
	if err != nil {
		return 0, errors.ErrMediaError.Wrap(err)
	}

	removed := 0
	for _, p := range stored {
		if _, ok := keep[p]; ok {
			continue
		}
		uc.logger.Info("Orphan media file", zap.String("path", p), zap.Bool("dry_run", dryRun))
		if !dryRun {
			if err := uc.media.Delete(ctx, p); err != nil {
				return removed, errors.ErrMediaError.Wrap(err)
			}
		}
		removed++
	}
	return removed, nil
}
