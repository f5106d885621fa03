package main

// @title Realty Catalog API
// @version 1.0.0
// @description Каталог новостроек и back-office галерей.
// @description
// @description Основные возможности:
// @description - Постраничный каталог ЖК с поиском по названию
// @description - Карточка ЖК с видеообзорами и акциями
// @description - Управление изображениями и видео галерей владельцев

// @contact.name API Support

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/realty-catalog/docs"
	"github.com/realty-catalog/internal/config"
	httpDelivery "github.com/realty-catalog/internal/delivery/http"
	"github.com/realty-catalog/internal/delivery/http/handler"
	"github.com/realty-catalog/internal/infrastructure/videothumb"
	"github.com/realty-catalog/internal/pkg/logger"
	"github.com/realty-catalog/internal/repository/media"
	"github.com/realty-catalog/internal/repository/mongodb"
	"github.com/realty-catalog/internal/repository/relational"
	"github.com/realty-catalog/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Realty Catalog")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("media_backend", cfg.Media.Backend),
	)

	// 3. Connect to the document store
	mongoDB, err := mongodb.New(&cfg.Mongo, log)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoDB.Close(); err != nil {
			log.Error("Failed to close MongoDB connection", zap.Error(err))
		}
	}()

	// 4. Connect to the relational database
	db, err := relational.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if cfg.Database.AutoMigrate {
		schemaCtx, schemaCancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := relational.EnsureSchema(schemaCtx, db)
		schemaCancel()
		if err != nil {
			log.Fatal("Failed to ensure schema", zap.Error(err))
		}
		log.Info("Database schema ensured")
	}

	// 5. Media storage. Клиент живёт весь срок процесса, поэтому без таймаута.
	storage, err := media.Open(context.Background(), &cfg.Media, log)
	if err != nil {
		log.Fatal("Failed to initialize media storage", zap.Error(err))
	}
	defer func() {
		if err := storage.Close(); err != nil {
			log.Error("Failed to close media storage", zap.Error(err))
		}
	}()

	// 6. Initialize Repositories
	listingRepo := mongodb.NewListingRepository(mongoDB)
	videoRepo := mongodb.NewVideoRepository(mongoDB)
	galleryRepo := relational.NewGalleryRepository(db)
	ownerRepo := relational.NewOwnerRepository(db)
	thumbs := videothumb.NewResolver(&cfg.Video, cfg.Media.PlaceholderURL, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	catalogUC := usecase.NewCatalogUseCase(listingRepo, videoRepo, thumbs, usecase.CatalogOptions{
		PerPage:        cfg.Catalog.PageSize,
		City:           cfg.Catalog.City,
		ObjectsLimit:   cfg.Catalog.ObjectsLimit,
		MediaPrefix:    cfg.Media.URLPrefix,
		PlaceholderURL: cfg.Media.PlaceholderURL,
	}, log)
	galleryUC := usecase.NewGalleryUseCase(galleryRepo, ownerRepo, storage, thumbs, log)

	// 8. Initialize HTTP Handlers
	catalogHandler := handler.NewCatalogHandler(catalogUC, log)
	galleryHandler := handler.NewGalleryHandler(galleryUC, log)
	healthHandler := handler.NewHealthHandler(map[string]handler.HealthChecker{
		"mongodb":  mongoDB,
		"database": db,
	}, log)

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, catalogHandler, galleryHandler, healthHandler)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
