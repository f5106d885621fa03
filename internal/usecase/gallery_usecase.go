package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/realty-catalog/internal/domain"
	"github.com/realty-catalog/internal/domain/repository"
	"github.com/realty-catalog/internal/pkg/errors"
	"github.com/realty-catalog/internal/pkg/utils"
	"github.com/realty-catalog/internal/pkg/validator"
	"github.com/realty-catalog/internal/usecase/dto"
)

const (
	defaultVideoTitle       = "Видео"
	defaultVideoDescription = "Видео из YouTube"
	slugMaxLength           = 60

	// все файлы галереи лежат под этим префиксом хранилища
	galleryMediaPrefix = "gallery/"
)

// GalleryUseCase - операции back-office над галереями владельцев
type GalleryUseCase struct {
	galleryRepo repository.GalleryRepository
	ownerRepo   repository.OwnerRepository
	media       repository.MediaStorage
	thumbs      repository.ThumbnailResolver
	logger      *zap.Logger
}

// NewGalleryUseCase - создание нового GalleryUseCase
func NewGalleryUseCase(
	galleryRepo repository.GalleryRepository,
	ownerRepo repository.OwnerRepository,
	media repository.MediaStorage,
	thumbs repository.ThumbnailResolver,
	logger *zap.Logger,
) *GalleryUseCase {
	return &GalleryUseCase{
		galleryRepo: galleryRepo,
		ownerRepo:   ownerRepo,
		media:       media,
		thumbs:      thumbs,
		logger:      logger,
	}
}

// Upload создаёт по элементу-изображению на каждый файл с order = индекс файла.
// Ошибка одного файла не мешает сохранить остальные.
func (uc *GalleryUseCase) Upload(ctx context.Context, req dto.UploadRequest) (*dto.UploadResponse, error) {
	owner, err := parseOwner(req.Category, req.ObjectID)
	if err != nil {
		return nil, err
	}
	if len(req.Files) == 0 {
		return nil, errors.ErrNoFiles
	}

	resp := &dto.UploadResponse{Success: true}

	for i, f := range req.Files {
		title := fmt.Sprintf("Изображение %d", i+1)
		if req.Bulk && f.Name != "" {
			title = truncateRunes(f.Name, domain.MaxGalleryTitleLength)
		}

		item := &domain.GalleryItem{
			OwnerKind: owner.Kind,
			OwnerID:   owner.ID,
			Kind:      domain.ContentImage,
			Title:     title,
			Order:     i,
			IsActive:  true,
		}

		if err := uc.createImage(ctx, item, f, slugSource(f.Name, i)); err != nil {
			if errors.Is(err, errors.ErrMediaError) {
				resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %s", f.Name, mediaMessage(err)))
				continue
			}
			return nil, err
		}
		resp.Count++
	}

	if resp.Count == 0 {
		return nil, errors.ErrMediaError.WithMessage(strings.Join(resp.Errors, "; "))
	}

	uc.logger.Info("Gallery upload completed",
		zap.String("owner_kind", string(owner.Kind)),
		zap.Int64("owner_id", owner.ID),
		zap.Int("created", resp.Count),
		zap.Int("failed", len(resp.Errors)),
	)

	return resp, nil
}

// GetObjects - владельцы указанного типа для выпадающего списка
func (uc *GalleryUseCase) GetObjects(ctx context.Context, category string) (*dto.GetObjectsResponse, error) {
	kind, ok := domain.ParseOwnerKind(category)
	if !ok {
		return nil, errors.ErrInvalidCategory
	}

	owners, err := uc.ownerRepo.ListOwners(ctx, kind)
	if err != nil {
		uc.logger.Error("Failed to list gallery owners", zap.String("kind", string(kind)), zap.Error(err))
		return nil, err
	}
	if owners == nil {
		owners = []domain.Owner{}
	}

	return &dto.GetObjectsResponse{Success: true, Objects: owners}, nil
}

// GetContent - элементы владельца заданного вида с абсолютными ссылками на файлы
func (uc *GalleryUseCase) GetContent(ctx context.Context, req dto.GetContentRequest) (*dto.GetContentResponse, error) {
	owner, err := parseOwner(req.Category, req.ObjectID)
	if err != nil {
		return nil, err
	}
	kind, ok := domain.ParseContentKind(req.ContentType)
	if !ok {
		return nil, errors.ErrInvalidContentType
	}

	items, err := uc.galleryRepo.List(ctx, domain.GalleryFilter{Owner: owner, Kind: kind})
	if err != nil {
		uc.logger.Error("Failed to list gallery content", zap.Any("owner", owner), zap.Error(err))
		return nil, err
	}

	views := make([]dto.GalleryItemView, 0, len(items))
	for _, item := range items {
		views = append(views, uc.toView(ctx, item, req.BaseURL))
	}

	return &dto.GetContentResponse{Success: true, Items: views}, nil
}

// Save создаёт изображения с подписями из параллельных массивов либо одно видео
func (uc *GalleryUseCase) Save(ctx context.Context, req dto.SaveContentRequest) (*dto.SaveContentResponse, error) {
	owner, err := parseOwner(req.Category, req.ObjectID)
	if err != nil {
		return nil, err
	}
	kind, ok := domain.ParseContentKind(req.ContentType)
	if !ok {
		return nil, errors.ErrInvalidContentType
	}

	if kind == domain.ContentVideo {
		return uc.saveVideo(ctx, owner, req.VideoURL)
	}

	if len(req.Files) == 0 {
		return nil, errors.ErrNoFiles
	}

	resp := &dto.SaveContentResponse{Success: true, IDs: []int64{}}

	for i, f := range req.Files {
		title := valueAt(req.Titles, i)
		if title == "" {
			title = fmt.Sprintf("Изображение %d", i+1)
		}
		slug := valueAt(req.TransliteratedTitles, i)
		if slug == "" {
			slug = fmt.Sprintf("image-%d", i+1)
		}

		item := &domain.GalleryItem{
			OwnerKind:   owner.Kind,
			OwnerID:     owner.ID,
			Kind:        domain.ContentImage,
			Title:       truncateRunes(title, domain.MaxGalleryTitleLength),
			Description: valueAt(req.Descriptions, i),
			Order:       i,
			IsMain:      req.IsMain[i],
			IsActive:    true,
		}

		if err := uc.createImage(ctx, item, f, slug); err != nil {
			if errors.Is(err, errors.ErrMediaError) {
				resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %s", f.Name, mediaMessage(err)))
				continue
			}
			return nil, err
		}
		resp.Count++
		resp.IDs = append(resp.IDs, item.ID)
	}

	if resp.Count == 0 {
		return nil, errors.ErrMediaError.WithMessage(strings.Join(resp.Errors, "; "))
	}

	return resp, nil
}

// saveVideo сохраняет ссылку как есть, без разбора; нормализация делается при чтении
func (uc *GalleryUseCase) saveVideo(ctx context.Context, owner domain.OwnerRef, videoURL string) (*dto.SaveContentResponse, error) {
	if strings.TrimSpace(videoURL) == "" {
		return nil, errors.ErrMissingVideoURL
	}

	existing, err := uc.galleryRepo.List(ctx, domain.GalleryFilter{Owner: owner, Kind: domain.ContentVideo})
	if err != nil {
		uc.logger.Error("Failed to list owner videos", zap.Any("owner", owner), zap.Error(err))
		return nil, err
	}

	item := &domain.GalleryItem{
		OwnerKind:   owner.Kind,
		OwnerID:     owner.ID,
		Kind:        domain.ContentVideo,
		Title:       defaultVideoTitle,
		Description: defaultVideoDescription,
		VideoURL:    videoURL,
		Order:       len(existing),
		IsMain:      true,
		IsActive:    true,
	}

	if err := uc.galleryRepo.Create(ctx, item); err != nil {
		uc.logger.Error("Failed to create gallery video", zap.Any("owner", owner), zap.Error(err))
		return nil, err
	}

	return &dto.SaveContentResponse{Success: true, Count: 1, IDs: []int64{item.ID}}, nil
}

// Update меняет заголовок, описание, ссылку на видео и признак главного элемента.
// Пустая ссылка на видео сохраняется как есть, такие записи убирает очистка галереи.
func (uc *GalleryUseCase) Update(ctx context.Context, req dto.UpdateContentRequest) (*dto.UpdateContentResponse, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, errors.ErrInvalidRequest.Wrap(err)
	}

	item, err := uc.galleryRepo.Update(ctx, req.ID, domain.GalleryPatch{
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		IsMain:      req.IsMain,
	})
	if err != nil {
		if !errors.Is(err, errors.ErrGalleryItemNotFound) {
			uc.logger.Error("Failed to update gallery item", zap.Int64("id", req.ID), zap.Error(err))
		}
		return nil, err
	}

	return &dto.UpdateContentResponse{Success: true, Item: uc.toView(ctx, item, req.BaseURL)}, nil
}

// Delete удаляет элемент; файл остаётся в хранилище, если не запрошено обратное
func (uc *GalleryUseCase) Delete(ctx context.Context, req dto.DeleteContentRequest) (*dto.FlagResponse, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, errors.ErrInvalidRequest.Wrap(err)
	}

	item, err := uc.galleryRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := uc.galleryRepo.Delete(ctx, req.ID); err != nil {
		uc.logger.Error("Failed to delete gallery item", zap.Int64("id", req.ID), zap.Error(err))
		return nil, err
	}

	if req.RemoveFile && item.ImagePath != "" {
		if err := uc.media.Delete(ctx, item.ImagePath); err != nil {
			uc.logger.Warn("Failed to remove gallery file",
				zap.Int64("id", req.ID),
				zap.String("path", item.ImagePath),
				zap.Error(err),
			)
		}
	}

	return &dto.FlagResponse{Success: true}, nil
}

func (uc *GalleryUseCase) createImage(ctx context.Context, item *domain.GalleryItem, f dto.UploadedFile, slug string) error {
	path, err := uc.storeFile(ctx, item.Owner(), f, slug)
	if err != nil {
		return err
	}
	item.ImagePath = path

	if err := uc.galleryRepo.Create(ctx, item); err != nil {
		uc.logger.Error("Failed to create gallery item", zap.Any("owner", item.Owner()), zap.Error(err))
		if delErr := uc.media.Delete(ctx, path); delErr != nil {
			uc.logger.Warn("Failed to remove orphan file", zap.String("path", path), zap.Error(delErr))
		}
		return err
	}
	return nil
}

func (uc *GalleryUseCase) storeFile(ctx context.Context, owner domain.OwnerRef, f dto.UploadedFile, slug string) (string, error) {
	if !isImageContentType(f.ContentType) {
		return "", errors.ErrMediaError.Wrap(fmt.Errorf("unsupported content type %q", f.ContentType))
	}
	if f.Open == nil {
		return "", errors.ErrMediaError.Wrap(fmt.Errorf("file is not readable"))
	}

	r, err := f.Open()
	if err != nil {
		return "", errors.ErrMediaError.Wrap(err)
	}
	defer r.Close()

	name := utils.Slugify(slug, slugMaxLength)
	if name == "" {
		name = "image"
	}
	key := fmt.Sprintf("%s%s/%d/%s-%s%s",
		galleryMediaPrefix, owner.Kind, owner.ID, name, uuid.NewString()[:8], strings.ToLower(filepath.Ext(f.Name)))

	path, err := uc.media.Save(ctx, key, r, f.ContentType)
	if err != nil {
		uc.logger.Error("Failed to store gallery file", zap.String("key", key), zap.Error(err))
		return "", errors.ErrMediaError.Wrap(err)
	}
	return path, nil
}

func (uc *GalleryUseCase) toView(ctx context.Context, item *domain.GalleryItem, baseURL string) dto.GalleryItemView {
	view := dto.GalleryItemView{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		ContentType: string(item.Kind),
		Order:       item.Order,
		IsMain:      item.IsMain,
		IsActive:    item.IsActive,
		CreatedAt:   item.CreatedAt,
		VideoURL:    item.VideoURL,
	}

	if item.ImagePath != "" {
		u := absoluteURL(baseURL, uc.media.URL(item.ImagePath))
		view.ImageURL = &u
	}

	if item.Kind == domain.ContentVideo && item.VideoURL != "" {
		view.EmbedURL = NormalizeVideoURL(item.VideoURL)
		switch {
		case item.VideoThumbnail != "":
			view.ThumbnailURL = absoluteURL(baseURL, uc.media.URL(item.VideoThumbnail))
		case uc.thumbs != nil:
			view.ThumbnailURL = uc.thumbs.Thumbnail(ctx, item.VideoURL)
		}
	}

	return view
}

func parseOwner(category, objectID string) (domain.OwnerRef, error) {
	kind, ok := domain.ParseOwnerKind(category)
	if !ok {
		return domain.OwnerRef{}, errors.ErrInvalidCategory
	}
	id, err := strconv.ParseInt(strings.TrimSpace(objectID), 10, 64)
	if err != nil || id <= 0 {
		return domain.OwnerRef{}, errors.ErrInvalidObjectID
	}
	return domain.OwnerRef{Kind: kind, ID: id}, nil
}

func isImageContentType(ct string) bool {
	ct = strings.ToLower(strings.TrimSpace(ct))
	return ct == "" || ct == "application/octet-stream" || strings.HasPrefix(ct, "image/")
}

func absoluteURL(baseURL, u string) string {
	if baseURL == "" || strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(u, "/")
}

func slugSource(fileName string, i int) string {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	if utils.Slugify(base, slugMaxLength) == "" {
		return fmt.Sprintf("image-%d", i+1)
	}
	return base
}

func mediaMessage(err error) string {
	if appErr, ok := errors.As(err); ok {
		return utils.FlagMessage(appErr)
	}
	return err.Error()
}

func valueAt(values []string, i int) string {
	if i < len(values) {
		return strings.TrimSpace(values[i])
	}
	return ""
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
