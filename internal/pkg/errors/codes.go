package errors

import "net/http"

var (
	ErrComplexNotFound = New(
		"COMPLEX_NOT_FOUND",
		"Residential complex not found",
		http.StatusNotFound,
	)

	ErrGalleryItemNotFound = New(
		"GALLERY_ITEM_NOT_FOUND",
		"Gallery item not found",
		http.StatusNotFound,
	)

	ErrOwnerNotFound = New(
		"OWNER_NOT_FOUND",
		"Gallery owner not found",
		http.StatusNotFound,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidPage = New(
		"INVALID_PAGE",
		"Invalid page number",
		http.StatusBadRequest,
	)

	ErrInvalidCategory = New(
		"INVALID_CATEGORY",
		"Неизвестная категория",
		http.StatusBadRequest,
	)

	ErrInvalidObjectID = New(
		"INVALID_OBJECT_ID",
		"Некорректный идентификатор объекта",
		http.StatusBadRequest,
	)

	ErrInvalidContentType = New(
		"INVALID_CONTENT_TYPE",
		"Некорректный тип контента",
		http.StatusBadRequest,
	)

	ErrMissingVideoURL = New(
		"MISSING_VIDEO_URL",
		"Не указан URL видео",
		http.StatusBadRequest,
	)

	ErrNoFiles = New(
		"NO_FILES",
		"Файлы не переданы",
		http.StatusBadRequest,
	)

	ErrMediaError = New(
		"MEDIA_ERROR",
		"Не удалось сохранить файл",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrDocumentStoreError = New(
		"DOCUMENT_STORE_ERROR",
		"Document store operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrGeocoderError = New(
		"GEOCODER_ERROR",
		"Geocoding request failed",
		http.StatusBadGateway,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
