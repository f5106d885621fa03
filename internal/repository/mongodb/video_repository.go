package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/realty-catalog/internal/domain"
	"github.com/realty-catalog/internal/domain/repository"
	"github.com/realty-catalog/internal/pkg/errors"
)

type videoRecord struct {
	ID        primitive.ObjectID `bson:"_id"`
	Title     string             `bson:"title"`
	URL       string             `bson:"url"`
	CreatedAt time.Time          `bson:"created_at"`
}

type promotionRecord struct {
	ID        primitive.ObjectID `bson:"_id"`
	Title     string             `bson:"title"`
	ExpiresAt *time.Time         `bson:"expires_at"`
}

type videoRepository struct {
	videos     *mongo.Collection
	promotions *mongo.Collection
	logger     *zap.Logger
}

func NewVideoRepository(db *DB) repository.VideoRepository {
	return &videoRepository{
		videos:     db.db.Collection(residentialVideosCollection),
		promotions: db.db.Collection(promotionsCollection),
		logger:     db.logger,
	}
}

func (r *videoRepository) ListByComplex(ctx context.Context, complexID string) ([]*domain.ResidentialVideo, error) {
	oid, err := primitive.ObjectIDFromHex(complexID)
	if err != nil {
		return nil, errors.ErrComplexNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.videos.Find(ctx, bson.M{"complex_id": oid}, opts)
	if err != nil {
		return nil, errors.ErrDocumentStoreError.Wrap(err)
	}
	defer cursor.Close(ctx)

	var records []videoRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.ErrDocumentStoreError.Wrap(err)
	}

	out := make([]*domain.ResidentialVideo, 0, len(records))
	for _, rec := range records {
		out = append(out, &domain.ResidentialVideo{
			ID:        rec.ID.Hex(),
			Title:     rec.Title,
			URL:       rec.URL,
			CreatedAt: rec.CreatedAt,
		})
	}
	return out, nil
}

func (r *videoRepository) ListPromotions(ctx context.Context, complexID string) ([]*domain.Promotion, error) {
	oid, err := primitive.ObjectIDFromHex(complexID)
	if err != nil {
		return nil, errors.ErrComplexNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.promotions.Find(ctx, bson.M{"complex_id": oid, "is_active": true}, opts)
	if err != nil {
		return nil, errors.ErrDocumentStoreError.Wrap(err)
	}
	defer cursor.Close(ctx)

	var records []promotionRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.ErrDocumentStoreError.Wrap(err)
	}

	out := make([]*domain.Promotion, 0, len(records))
	for _, rec := range records {
		out = append(out, &domain.Promotion{
			ID:        rec.ID.Hex(),
			Title:     rec.Title,
			ExpiresAt: rec.ExpiresAt,
		})
	}
	return out, nil
}
