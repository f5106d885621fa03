package relational

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/realty-catalog/internal/domain"
	"github.com/realty-catalog/internal/domain/repository"
	"github.com/realty-catalog/internal/pkg/errors"
)

const galleryColumns = `id, owner_kind, owner_id, kind, title, description, image_path,
	video_url, video_thumbnail, sort_order, is_main, is_active, created_at`

type galleryRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewGalleryRepository(db *DB) repository.GalleryRepository {
	return &galleryRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *galleryRepository) Create(ctx context.Context, item *domain.GalleryItem) error {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	query := r.db.Rebind(`
		INSERT INTO gallery_items (
			owner_kind, owner_id, kind, title, description, image_path,
			video_url, video_thumbnail, sort_order, is_main, is_active, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	err := r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		if item.IsMain {
			if err := lockOwner(ctx, tx, item.Owner()); err != nil {
				return err
			}
		}
		if err := tx.QueryRowxContext(ctx, query,
			string(item.OwnerKind), item.OwnerID, string(item.Kind), item.Title, item.Description, item.ImagePath,
			item.VideoURL, item.VideoThumbnail, item.Order, item.IsMain, item.IsActive, item.CreatedAt,
		).Scan(&item.ID); err != nil {
			return err
		}
		if item.IsMain {
			return setMain(ctx, tx, item.Owner(), item.ID)
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to insert gallery item", zap.Any("owner", item.Owner()), zap.Error(err))
		return errors.ErrDatabaseError.Wrap(err)
	}

	return nil
}

func (r *galleryRepository) GetByID(ctx context.Context, id int64) (*domain.GalleryItem, error) {
	return getItem(ctx, r.db.DB, id)
}

func (r *galleryRepository) List(ctx context.Context, filter domain.GalleryFilter) ([]*domain.GalleryItem, error) {
	query := `SELECT ` + galleryColumns + ` FROM gallery_items WHERE owner_kind = ? AND owner_id = ?`
	args := []any{string(filter.Owner.Kind), filter.Owner.ID}
	if filter.Kind != "" {
		query += ` AND kind = ?`
		args = append(args, string(filter.Kind))
	}
	query += ` ORDER BY sort_order, created_at, id`

	items := []*domain.GalleryItem{}
	if err := r.db.SelectContext(ctx, &items, r.db.Rebind(query), args...); err != nil {
		r.logger.Error("Failed to list gallery items", zap.Any("filter", filter), zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}
	return items, nil
}

// Update применяет патч в одной транзакции. Признак главного ставится одним
// UPDATE по всем элементам владельца под блокировкой владельца,
// поэтому параллельные запросы оставляют ровно один главный.
func (r *galleryRepository) Update(ctx context.Context, id int64, patch domain.GalleryPatch) (*domain.GalleryItem, error) {
	var updated *domain.GalleryItem

	err := r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		item, err := getItem(ctx, tx, id)
		if err != nil {
			return err
		}

		sets := make([]string, 0, 4)
		args := make([]any, 0, 5)
		if patch.Title != nil {
			sets = append(sets, "title = ?")
			args = append(args, *patch.Title)
		}
		if patch.Description != nil {
			sets = append(sets, "description = ?")
			args = append(args, *patch.Description)
		}
		if patch.VideoURL != nil {
			sets = append(sets, "video_url = ?")
			args = append(args, *patch.VideoURL)
		}
		if patch.IsMain != nil && !*patch.IsMain {
			sets = append(sets, "is_main = ?")
			args = append(args, false)
		}

		if len(sets) > 0 {
			query := `UPDATE gallery_items SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
			args = append(args, id)
			if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
				return errors.ErrDatabaseError.Wrap(err)
			}
		}

		if patch.IsMain != nil && *patch.IsMain {
			if err := lockOwner(ctx, tx, item.Owner()); err != nil {
				return errors.ErrDatabaseError.Wrap(err)
			}
			if err := setMain(ctx, tx, item.Owner(), id); err != nil {
				return errors.ErrDatabaseError.Wrap(err)
			}
		}

		updated, err = getItem(ctx, tx, id)
		return err
	})
	if err != nil {
		if !errors.Is(err, errors.ErrGalleryItemNotFound) {
			r.logger.Error("Failed to update gallery item", zap.Int64("id", id), zap.Error(err))
		}
		if _, ok := errors.As(err); ok {
			return nil, err
		}
		return nil, errors.ErrDatabaseError.Wrap(err)
	}

	return updated, nil
}

func (r *galleryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM gallery_items WHERE id = ?`), id)
	if err != nil {
		r.logger.Error("Failed to delete gallery item", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError.Wrap(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError.Wrap(err)
	}
	if n == 0 {
		return errors.ErrGalleryItemNotFound
	}
	return nil
}

func (r *galleryRepository) ClearMain(ctx context.Context, owner domain.OwnerRef) error {
	err := r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := lockOwner(ctx, tx, owner); err != nil {
			return err
		}
		return clearMain(ctx, tx, owner)
	})
	if err != nil {
		r.logger.Error("Failed to clear main flag", zap.Any("owner", owner), zap.Error(err))
		return errors.ErrDatabaseError.Wrap(err)
	}
	return nil
}

func (r *galleryRepository) ListVideosForCleanup(ctx context.Context) ([]*domain.GalleryItem, error) {
	query := r.db.Rebind(`SELECT ` + galleryColumns + ` FROM gallery_items
		WHERE kind = ? AND (TRIM(video_url) = '' OR video_url LIKE ?)
		ORDER BY id`)

	items := []*domain.GalleryItem{}
	if err := r.db.SelectContext(ctx, &items, query, string(domain.ContentVideo), "%<iframe%"); err != nil {
		r.logger.Error("Failed to list videos for cleanup", zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}
	return items, nil
}

func (r *galleryRepository) ImagePaths(ctx context.Context) ([]string, error) {
	paths := []string{}
	query := `SELECT image_path FROM gallery_items WHERE image_path <> ''
		UNION SELECT video_thumbnail FROM gallery_items WHERE video_thumbnail <> ''`
	if err := r.db.SelectContext(ctx, &paths, query); err != nil {
		r.logger.Error("Failed to list gallery image paths", zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}
	return paths, nil
}

// queryer и execer реализуются и *sqlx.DB, и *sqlx.Tx
type queryer interface {
	sqlx.QueryerContext
	Rebind(string) string
}

type execer interface {
	sqlx.ExecerContext
	Rebind(string) string
}

func getItem(ctx context.Context, q queryer, id int64) (*domain.GalleryItem, error) {
	var item domain.GalleryItem
	query := q.Rebind(`SELECT ` + galleryColumns + ` FROM gallery_items WHERE id = ?`)

	err := sqlx.GetContext(ctx, q, &item, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrGalleryItemNotFound
	}
	if err != nil {
		return nil, errors.ErrDatabaseError.Wrap(err)
	}
	return &item, nil
}

// clearMain трогает все строки владельца: фильтр по is_main пропустил бы
// строку, которую параллельная транзакция как раз делает главной
func clearMain(ctx context.Context, e execer, owner domain.OwnerRef) error {
	query := e.Rebind(`UPDATE gallery_items SET is_main = ? WHERE owner_kind = ? AND owner_id = ?`)
	_, err := e.ExecContext(ctx, query, false, string(owner.Kind), owner.ID)
	return err
}

// lockOwner сериализует смену главного элемента одного владельца до конца
// транзакции. В SQLite писатель и так один, блокировка не нужна.
func lockOwner(ctx context.Context, tx *sqlx.Tx, owner domain.OwnerRef) error {
	if strings.HasPrefix(tx.DriverName(), "sqlite") {
		return nil
	}
	key := fmt.Sprintf("gallery:%s:%d", owner.Kind, owner.ID)
	_, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key)
	return err
}

func setMain(ctx context.Context, e execer, owner domain.OwnerRef, id int64) error {
	query := e.Rebind(`UPDATE gallery_items SET is_main = (id = ?) WHERE owner_kind = ? AND owner_id = ?`)
	_, err := e.ExecContext(ctx, query, id, string(owner.Kind), owner.ID)
	return err
}
