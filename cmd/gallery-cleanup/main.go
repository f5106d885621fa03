package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/realty-catalog/internal/config"
	"github.com/realty-catalog/internal/domain/repository"
	"github.com/realty-catalog/internal/pkg/logger"
	"github.com/realty-catalog/internal/repository/media"
	"github.com/realty-catalog/internal/repository/relational"
	"github.com/realty-catalog/internal/usecase"
)

func main() {
	dryRun := pflag.Bool("dry-run", false, "только показать, что будет изменено")
	sweepOrphans := pflag.Bool("sweep-orphans", false, "удалить файлы gallery/, на которые не ссылается ни один элемент")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.ForCommand(cfg.Log.Level, "gallery-cleanup")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	db, err := relational.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var storage repository.MediaStorage
	if *sweepOrphans {
		backend, err := media.Open(ctx, &cfg.Media, log)
		if err != nil {
			log.Fatal("Failed to initialize media storage", zap.Error(err))
		}
		defer backend.Close()
		storage = backend
	}

	uc := usecase.NewGalleryCleanupUseCase(relational.NewGalleryRepository(db), storage, log)

	res, err := uc.Run(ctx, *dryRun)
	if err != nil {
		log.Fatal("Gallery cleanup failed", zap.Error(err))
	}
	log.Info("Gallery videos cleaned",
		zap.Int("pruned", res.Pruned),
		zap.Int("rewritten", res.Rewritten),
		zap.Int("skipped", res.Skipped),
		zap.Bool("dry_run", *dryRun),
	)

	if *sweepOrphans {
		n, err := uc.SweepOrphans(ctx, *dryRun)
		if err != nil {
			log.Fatal("Orphan sweep failed", zap.Int("removed", n), zap.Error(err))
		}
		log.Info("Orphan files swept", zap.Int("files", n), zap.Bool("dry_run", *dryRun))
	}
}
