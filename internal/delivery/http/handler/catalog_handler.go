package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/realty-catalog/internal/pkg/errors"
	"github.com/realty-catalog/internal/pkg/utils"
	"github.com/realty-catalog/internal/usecase"
	"github.com/realty-catalog/internal/usecase/dto"
)

// CatalogHandler - публичный каталог новостроек
type CatalogHandler struct {
	catalogUC *usecase.CatalogUseCase
	logger    *zap.Logger
}

// NewCatalogHandler - создание нового CatalogHandler
func NewCatalogHandler(catalogUC *usecase.CatalogUseCase, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// List godoc
// @Summary Страница каталога ЖК
// @Description Постраничный список ЖК из коллекции unified_houses, по 9 на страницу. Поиск без учёта регистра по названию ЖК из любого источника. При сбое хранилища возвращается пустая страница с полем error и статусом 200.
// @Tags Catalog
// @Produce json
// @Param page query int false "Номер страницы" default(1)
// @Param search query string false "Подстрока названия"
// @Success 200 {object} dto.CatalogListResponse
// @Failure 400 {object} dto.CatalogListResponse
// @Router /api/catalog/ [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	req := dto.CatalogListRequest{
		Page:   parsePage(c.Query("page")),
		Search: c.Query("search"),
	}

	resp, err := h.catalogUC.List(c.Context(), req)
	if err != nil {
		return c.Status(flagStatus(err)).JSON(resp)
	}
	return c.JSON(resp)
}

// Detail godoc
// @Summary Карточка ЖК
// @Description Карточка ЖК по 24-символьному hex-идентификатору документа, с видеообзорами и акциями
// @Tags Catalog
// @Produce json
// @Param id path string true "Идентификатор документа"
// @Success 200 {object} utils.SuccessResponse{data=dto.ComplexDetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/complexes/{id} [get]
func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	resp, err := h.catalogUC.Detail(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// VideoObjects godoc
// @Summary ЖК для формы видеообзоров
// @Description Для category=newbuild возвращает до 1000 пар {id, name}; для остальных категорий пустой список
// @Tags Catalog
// @Produce json
// @Param category query string true "Категория" Enums(newbuild)
// @Success 200 {object} dto.VideoObjectsResponse
// @Router /api/videos/objects [get]
func (h *CatalogHandler) VideoObjects(c *fiber.Ctx) error {
	resp, err := h.catalogUC.VideoObjects(c.Context(), c.Query("category"))
	if err != nil {
		return c.Status(flagStatus(err)).JSON(resp)
	}
	return c.JSON(resp)
}

// parsePage: пустое значение - первая страница, мусор - 0, который не пройдёт валидацию
func parsePage(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return page
}

// flagStatus - ошибки хранилища отдаются с 200, как ждёт фронтенд
func flagStatus(err error) int {
	appErr, ok := errors.As(err)
	if !ok || appErr.StatusCode >= fiber.StatusInternalServerError {
		return fiber.StatusOK
	}
	return appErr.StatusCode
}
