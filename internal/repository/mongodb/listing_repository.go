package mongodb

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/realty-catalog/internal/domain"
	"github.com/realty-catalog/internal/domain/repository"
	"github.com/realty-catalog/internal/pkg/errors"
)

// nameFields - поля названия в старой и новой форме документа
var nameFields = []string{
	"domrf.name",
	"avito.development.name",
	"domclick.development.complex_name",
	"development.name",
}

type listingRepository struct {
	db     *DB
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewListingRepository(db *DB) repository.ListingRepository {
	return &listingRepository{
		db:     db,
		coll:   db.db.Collection(unifiedHousesCollection),
		logger: db.logger,
	}
}

// SearchFilter - подстрока без учёта регистра по любому из полей названия
func SearchFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}

	re := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	or := make(bson.A, 0, len(nameFields))
	for _, f := range nameFields {
		or = append(or, bson.M{f: re})
	}
	return bson.M{"$or": or}
}

func (r *listingRepository) List(ctx context.Context, search string, skip, limit int64) (*domain.DocumentPage, error) {
	filter := SearchFilter(search)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		r.logger.Error("Failed to count unified houses", zap.String("search", search), zap.Error(err))
		return nil, errors.ErrDocumentStoreError.Wrap(err)
	}

	docs, err := r.find(ctx, filter, options.Find().SetSkip(skip).SetLimit(limit))
	if err != nil {
		r.logger.Error("Failed to list unified houses", zap.Int64("skip", skip), zap.Error(err))
		return nil, errors.ErrDocumentStoreError.Wrap(err)
	}

	return &domain.DocumentPage{Documents: docs, TotalCount: total}, nil
}

func (r *listingRepository) GetByID(ctx context.Context, id string) (domain.Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.ErrComplexNotFound
	}

	var raw bson.D
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&raw)
	if err == mongo.ErrNoDocuments {
		return nil, errors.ErrComplexNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get unified house", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDocumentStoreError.Wrap(err)
	}

	return toDocument(raw), nil
}

func (r *listingRepository) ListNames(ctx context.Context, limit int64) ([]domain.Document, error) {
	projection := bson.M{}
	for _, f := range nameFields {
		projection[f] = 1
	}

	docs, err := r.find(ctx, bson.M{}, options.Find().SetProjection(projection).SetLimit(limit))
	if err != nil {
		r.logger.Error("Failed to list unified house names", zap.Error(err))
		return nil, errors.ErrDocumentStoreError.Wrap(err)
	}
	return docs, nil
}

func (r *listingRepository) Ping(ctx context.Context) error {
	return r.db.Health(ctx)
}

func (r *listingRepository) find(ctx context.Context, filter any, opts *options.FindOptions) ([]domain.Document, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var raw []bson.D
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}

	docs := make([]domain.Document, 0, len(raw))
	for _, d := range raw {
		docs = append(docs, toDocument(d))
	}
	return docs, nil
}
