package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/realty-catalog/internal/domain"
	"github.com/realty-catalog/internal/domain/repository"
	"github.com/realty-catalog/internal/pkg/errors"
	"github.com/realty-catalog/internal/pkg/utils"
	"github.com/realty-catalog/internal/pkg/validator"
	"github.com/realty-catalog/internal/usecase/dto"
)

const (
	VideoCategoryNewbuild = "newbuild"
	defaultObjectName     = "ЖК"
	listImageSlots        = 4
)

// CatalogOptions - параметры выдачи каталога
type CatalogOptions struct {
	PerPage        int
	City           string
	ObjectsLimit   int
	MediaPrefix    string
	PlaceholderURL string
}

// CatalogUseCase - чтение каталога ЖК из документного хранилища
type CatalogUseCase struct {
	listingRepo repository.ListingRepository
	videoRepo   repository.VideoRepository
	thumbs      repository.ThumbnailResolver
	opts        CatalogOptions
	logger      *zap.Logger
}

// NewCatalogUseCase - создание нового CatalogUseCase
func NewCatalogUseCase(
	listingRepo repository.ListingRepository,
	videoRepo repository.VideoRepository,
	thumbs repository.ThumbnailResolver,
	opts CatalogOptions,
	logger *zap.Logger,
) *CatalogUseCase {
	if opts.PerPage <= 0 {
		opts.PerPage = 9
	}
	if opts.MediaPrefix == "" {
		opts.MediaPrefix = "/media/"
	}
	if opts.ObjectsLimit <= 0 {
		opts.ObjectsLimit = 1000
	}
	return &CatalogUseCase{
		listingRepo: listingRepo,
		videoRepo:   videoRepo,
		thumbs:      thumbs,
		opts:        opts,
		logger:      logger,
	}
}

// List - страница каталога. Ответ возвращается всегда: при ошибке это пустая страница
// с текстом ошибки, а сама ошибка нужна только для выбора статуса.
func (uc *CatalogUseCase) List(ctx context.Context, req dto.CatalogListRequest) (*dto.CatalogListResponse, error) {
	req.Search = strings.TrimSpace(req.Search)

	if err := validator.Validate(&req); err != nil {
		appErr := errors.ErrInvalidPage.Wrap(err)
		return dto.EmptyCatalogPage(appErr.Message), appErr
	}

	page, err := uc.listingRepo.List(
		ctx,
		req.Search,
		utils.Offset(req.Page, uc.opts.PerPage),
		int64(uc.opts.PerPage),
	)
	if err != nil {
		uc.logger.Error("Failed to list catalog",
			zap.Int("page", req.Page),
			zap.String("search", req.Search),
			zap.Error(err),
		)
		return dto.EmptyCatalogPage(err.Error()), err
	}

	totalPages := utils.TotalPages(page.TotalCount, uc.opts.PerPage)

	items := make([]dto.CatalogListItem, 0, len(page.Documents))
	for _, doc := range page.Documents {
		items = append(items, uc.toListItem(AdaptListing(doc)))
	}

	return &dto.CatalogListResponse{
		Complexes:   items,
		HasPrevious: req.Page > 1,
		HasNext:     req.Page < totalPages,
		CurrentPage: req.Page,
		TotalPages:  totalPages,
		TotalCount:  page.TotalCount,
	}, nil
}

func (uc *CatalogUseCase) toListItem(v *domain.ListingView) dto.CatalogListItem {
	price := v.PriceRange
	if price == "" {
		price = domain.NoPriceLabel
	}

	var images [listImageSlots]*string
	for i := 0; i < listImageSlots && i < len(v.Photos); i++ {
		u := uc.mediaURL(v.Photos[i])
		images[i] = &u
	}

	return dto.CatalogListItem{
		ID:              v.ID,
		Name:            v.Name,
		Address:         v.Address,
		PriceRange:      price,
		PriceDisplay:    price,
		Photos:          v.Photos,
		ImageURL:        images[0],
		Image2URL:       images[1],
		Image3URL:       images[2],
		Image4URL:       images[3],
		Lat:             v.Latitude,
		Lng:             v.Longitude,
		Latitude:        v.Latitude,
		Longitude:       v.Longitude,
		Parameters:      v.Parameters,
		CompletionDate:  v.Parameters[domain.ParamCompletionDate],
		HousingClass:    v.Parameters[domain.ParamHousingClass],
		HousingType:     v.Parameters[domain.ParamHousingType],
		AvitoURL:        v.AvitoURL,
		DomclickURL:     v.DomclickURL,
		TotalApartments: v.TotalApartments,
		Location:        v.Address,
		City:            uc.opts.City,
	}
}

// Detail - карточка ЖК. Идентификаторы не из документного хранилища обслуживаются
// реляционной частью сайта, здесь для них возвращается not found.
func (uc *CatalogUseCase) Detail(ctx context.Context, id string) (*dto.ComplexDetailResponse, error) {
	if !validator.IsObjectIDHex(id) {
		return nil, errors.ErrComplexNotFound
	}

	doc, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, errors.ErrComplexNotFound) {
			uc.logger.Error("Failed to get complex", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}

	view := AdaptListing(doc)

	return &dto.ComplexDetailResponse{
		Complex: &dto.ComplexDetail{ListingView: *view, City: uc.opts.City},
		Videos:  uc.complexVideos(ctx, id),
		Offers:  uc.complexOffers(ctx, id, view),
	}, nil
}

func (uc *CatalogUseCase) complexVideos(ctx context.Context, id string) []dto.VideoItem {
	out := []dto.VideoItem{}
	if uc.videoRepo == nil {
		return out
	}

	videos, err := uc.videoRepo.ListByComplex(ctx, id)
	if err != nil {
		uc.logger.Warn("Failed to load complex videos", zap.String("id", id), zap.Error(err))
		return out
	}

	for _, v := range videos {
		item := dto.VideoItem{
			ID:        v.ID,
			Title:     v.Title,
			VideoURL:  v.URL,
			EmbedURL:  NormalizeVideoURL(v.URL),
			CreatedAt: v.CreatedAt,
		}
		if uc.thumbs != nil {
			item.ThumbnailURL = uc.thumbs.Thumbnail(ctx, v.URL)
		}
		out = append(out, item)
	}
	return out
}

func (uc *CatalogUseCase) complexOffers(ctx context.Context, id string, view *domain.ListingView) []dto.OfferItem {
	out := []dto.OfferItem{}
	if uc.videoRepo == nil {
		return out
	}

	promos, err := uc.videoRepo.ListPromotions(ctx, id)
	if err != nil {
		uc.logger.Warn("Failed to load complex offers", zap.String("id", id), zap.Error(err))
		return out
	}

	image := uc.opts.PlaceholderURL
	if len(view.Photos) > 0 {
		image = uc.mediaURL(view.Photos[0])
	}

	for _, p := range promos {
		title := p.Title
		if title == "" {
			title = domain.DefaultPromotionTitle
		}
		out = append(out, dto.OfferItem{
			ID:        p.ID,
			Title:     title,
			ExpiresAt: p.ExpiresAt,
			ImageURL:  image,
		})
	}
	return out
}

// VideoObjects - список ЖК для формы видеообзоров; для других категорий пусто
func (uc *CatalogUseCase) VideoObjects(ctx context.Context, category string) (*dto.VideoObjectsResponse, error) {
	resp := &dto.VideoObjectsResponse{Success: true, Objects: []domain.NamedObject{}}
	if strings.TrimSpace(category) != VideoCategoryNewbuild {
		return resp, nil
	}

	docs, err := uc.listingRepo.ListNames(ctx, int64(uc.opts.ObjectsLimit))
	if err != nil {
		uc.logger.Error("Failed to list complex names", zap.Error(err))
		return &dto.VideoObjectsResponse{Success: false, Objects: []domain.NamedObject{}, Error: err.Error()}, err
	}

	for _, doc := range docs {
		resp.Objects = append(resp.Objects, domain.NamedObject{
			ID:   documentID(doc),
			Name: ComplexShortName(doc, defaultObjectName),
		})
	}
	return resp, nil
}

// mediaURL: относительный путь из хранилища превращается в /media/..., абсолютные ссылки не трогаются
func (uc *CatalogUseCase) mediaURL(p string) string {
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	return uc.opts.MediaPrefix + strings.TrimPrefix(p, "/")
}
