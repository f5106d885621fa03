package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/realty-catalog/internal/pkg/errors"
	"github.com/realty-catalog/internal/pkg/utils"
	"github.com/realty-catalog/internal/usecase"
	"github.com/realty-catalog/internal/usecase/dto"
)

// поля multipart, в которых фронтенды присылают файлы
var fileFields = []string{"files", "files[]", "images", "images[]"}

// GalleryHandler - JSON-протокол back-office для галерей.
// Ответ всегда {success, ...}; ошибки хранилища приходят со статусом 200.
type GalleryHandler struct {
	galleryUC *usecase.GalleryUseCase
	logger    *zap.Logger
}

// NewGalleryHandler - создание нового GalleryHandler
func NewGalleryHandler(galleryUC *usecase.GalleryUseCase, logger *zap.Logger) *GalleryHandler {
	return &GalleryHandler{
		galleryUC: galleryUC,
		logger:    logger,
	}
}

// Upload godoc
// @Summary Загрузка изображений (drag&drop)
// @Description Создаёт по элементу на файл, order = индекс файла, заголовок "Изображение N"
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param category formData string true "Тип владельца"
// @Param object_id formData string true "ID владельца"
// @Param files formData file true "Файлы"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} utils.FlagResponse
// @Router /admin/gallery/upload [post]
func (h *GalleryHandler) Upload(c *fiber.Ctx) error {
	return h.upload(c, false)
}

// BulkUpload godoc
// @Summary Массовая загрузка изображений
// @Description Как upload, но заголовок берётся из имени файла
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param category formData string true "Тип владельца"
// @Param object_id formData string true "ID владельца"
// @Param files formData file true "Файлы"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} utils.FlagResponse
// @Router /admin/gallery/bulk-upload [post]
func (h *GalleryHandler) BulkUpload(c *fiber.Ctx) error {
	return h.upload(c, true)
}

func (h *GalleryHandler) upload(c *fiber.Ctx, bulk bool) error {
	form, err := c.MultipartForm()
	if err != nil {
		return utils.SendFlagError(c, errors.ErrInvalidRequest.Wrap(err))
	}

	req := dto.UploadRequest{
		Category: formValue(form, "category"),
		ObjectID: formValue(form, "object_id"),
		Files:    uploadedFiles(form),
		Bulk:     bulk,
	}

	resp, err := h.galleryUC.Upload(c.Context(), req)
	if err != nil {
		return utils.SendFlagError(c, err)
	}
	return c.JSON(resp)
}

// GetObjects godoc
// @Summary Владельцы галерей выбранного типа
// @Tags Gallery
// @Produce json
// @Param category query string true "Тип владельца"
// @Success 200 {object} dto.GetObjectsResponse
// @Failure 400 {object} utils.FlagResponse
// @Router /admin/gallery/get-objects [get]
func (h *GalleryHandler) GetObjects(c *fiber.Ctx) error {
	resp, err := h.galleryUC.GetObjects(c.Context(), c.Query("category"))
	if err != nil {
		return utils.SendFlagError(c, err)
	}
	return c.JSON(resp)
}

// GetContent godoc
// @Summary Элементы галереи владельца
// @Description Ссылки на файлы абсолютные, от адреса запроса
// @Tags Gallery
// @Produce json
// @Param category query string true "Тип владельца"
// @Param object_id query string true "ID владельца"
// @Param content_type query string true "image или video"
// @Success 200 {object} dto.GetContentResponse
// @Failure 400 {object} utils.FlagResponse
// @Router /admin/gallery/get-content [get]
func (h *GalleryHandler) GetContent(c *fiber.Ctx) error {
	req := dto.GetContentRequest{
		Category:    c.Query("category"),
		ObjectID:    c.Query("object_id"),
		ContentType: c.Query("content_type"),
		BaseURL:     c.BaseURL(),
	}

	resp, err := h.galleryUC.GetContent(c.Context(), req)
	if err != nil {
		return utils.SendFlagError(c, err)
	}
	return c.JSON(resp)
}

// SaveContent godoc
// @Summary Сохранение изображений с подписями или видео
// @Description Для image - файлы и параллельные массивы titles[], descriptions[], transliterated_titles[], флаги is_main_{i}. Для video - только video_url.
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param category formData string true "Тип владельца"
// @Param object_id formData string true "ID владельца"
// @Param content_type formData string true "image или video"
// @Param video_url formData string false "Ссылка на видео"
// @Success 200 {object} dto.SaveContentResponse
// @Failure 400 {object} utils.FlagResponse
// @Router /admin/gallery/save-content [post]
func (h *GalleryHandler) SaveContent(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		// видео можно прислать и обычной формой
		form = &multipart.Form{Value: map[string][]string{}}
		c.Request().PostArgs().VisitAll(func(k, v []byte) {
			form.Value[string(k)] = append(form.Value[string(k)], string(v))
		})
	}

	req := dto.SaveContentRequest{
		Category:             formValue(form, "category"),
		ObjectID:             formValue(form, "object_id"),
		ContentType:          formValue(form, "content_type"),
		Files:                uploadedFiles(form),
		Titles:               formValues(form, "titles"),
		Descriptions:         formValues(form, "descriptions"),
		TransliteratedTitles: formValues(form, "transliterated_titles"),
		IsMain:               mainFlags(form),
		VideoURL:             formValue(form, "video_url"),
	}

	resp, err := h.galleryUC.Save(c.Context(), req)
	if err != nil {
		return utils.SendFlagError(c, err)
	}
	return c.JSON(resp)
}

// UpdateContent godoc
// @Summary Изменение элемента галереи
// @Description Меняет title, description, video_url, is_main. is_main=true снимает флаг с остальных элементов владельца.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param request body dto.UpdateContentRequest true "Изменения"
// @Success 200 {object} dto.UpdateContentResponse
// @Failure 400 {object} utils.FlagResponse
// @Failure 404 {object} utils.FlagResponse
// @Router /admin/gallery/update-content [post]
func (h *GalleryHandler) UpdateContent(c *fiber.Ctx) error {
	var req dto.UpdateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendFlagError(c, errors.ErrInvalidRequest.Wrap(err))
	}
	req.BaseURL = c.BaseURL()

	resp, err := h.galleryUC.Update(c.Context(), req)
	if err != nil {
		return utils.SendFlagError(c, err)
	}
	return c.JSON(resp)
}

// DeleteContent godoc
// @Summary Удаление элемента галереи
// @Description Файл остаётся в хранилище, если не передан remove_file=true
// @Tags Gallery
// @Accept json
// @Produce json
// @Param request body dto.DeleteContentRequest true "ID элемента"
// @Success 200 {object} dto.FlagResponse
// @Failure 400 {object} utils.FlagResponse
// @Failure 404 {object} utils.FlagResponse
// @Router /admin/gallery/delete-content [post]
func (h *GalleryHandler) DeleteContent(c *fiber.Ctx) error {
	var req dto.DeleteContentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendFlagError(c, errors.ErrInvalidRequest.Wrap(err))
	}

	resp, err := h.galleryUC.Delete(c.Context(), req)
	if err != nil {
		return utils.SendFlagError(c, err)
	}
	return c.JSON(resp)
}

func formValue(form *multipart.Form, key string) string {
	if vals := form.Value[key]; len(vals) > 0 {
		return strings.TrimSpace(vals[0])
	}
	return ""
}

// formValues принимает и key[], и key
func formValues(form *multipart.Form, key string) []string {
	if vals, ok := form.Value[key+"[]"]; ok {
		return vals
	}
	return form.Value[key]
}

func mainFlags(form *multipart.Form) map[int]bool {
	flags := map[int]bool{}
	for key, vals := range form.Value {
		var i int
		if _, err := fmt.Sscanf(key, "is_main_%d", &i); err != nil || len(vals) == 0 {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(vals[0])) {
		case "true", "on", "1", "yes":
			flags[i] = true
		}
	}
	return flags
}

func uploadedFiles(form *multipart.Form) []dto.UploadedFile {
	var files []dto.UploadedFile
	for _, field := range fileFields {
		for _, fh := range form.File[field] {
			files = append(files, toUploadedFile(fh))
		}
	}
	return files
}

func toUploadedFile(fh *multipart.FileHeader) dto.UploadedFile {
	return dto.UploadedFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
