package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/realty-catalog/internal/config"
	"github.com/realty-catalog/internal/delivery/http/handler"
	"github.com/realty-catalog/internal/delivery/http/middleware"
	"github.com/realty-catalog/internal/pkg/utils"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	catalogHandler *handler.CatalogHandler
	galleryHandler *handler.GalleryHandler
	healthHandler  *handler.HealthHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	catalogHandler *handler.CatalogHandler,
	galleryHandler *handler.GalleryHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	bodyLimit := cfg.Server.BodyLimitMB
	if bodyLimit <= 0 {
		bodyLimit = 50
	}

	app := fiber.New(fiber.Config{
		AppName:      "Realty Catalog",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    bodyLimit * 1024 * 1024,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		catalogHandler: catalogHandler,
		galleryHandler: galleryHandler,
		healthHandler:  healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - для тестов через app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// загруженные файлы раздаём сами только для локального хранилища
	if s.config.Media.Backend == config.MediaBackendLocal {
		s.app.Static(s.config.Media.URLPrefix, s.config.Media.Root)
	}

	// Catalog
	s.app.Get("/api/catalog", s.catalogHandler.List)
	s.app.Get("/catalog/api", s.catalogHandler.List)
	s.app.Get("/complex/:id", s.catalogHandler.Detail)
	s.app.Get("/api/videos/objects", s.catalogHandler.VideoObjects)

	api := s.app.Group("/api/v1")
	api.Get("/health", s.healthHandler.Health)
	api.Get("/complexes/:id", s.catalogHandler.Detail)

	// Gallery back-office
	gallery := s.app.Group("/admin/gallery")
	gallery.Post("/upload", s.galleryHandler.Upload)
	gallery.Post("/bulk-upload", s.galleryHandler.BulkUpload)
	gallery.Get("/get-objects", s.galleryHandler.GetObjects)
	gallery.Get("/get-content", s.galleryHandler.GetContent)
	gallery.Post("/save-content", s.galleryHandler.SaveContent)
	gallery.Post("/update-content", s.galleryHandler.UpdateContent)
	gallery.Post("/delete-content", s.galleryHandler.DeleteContent)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - 404 на неизвестные маршруты и всё, что не обработали хендлеры
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(utils.FlagResponse{
			Success: false,
			Error:   err.Error(),
		})
	}
}
