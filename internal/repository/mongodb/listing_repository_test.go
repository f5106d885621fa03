package mongodb

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/realty-catalog/internal/pkg/errors"
)

// setupTestMongo подключается к тестовому MongoDB и создаёт временную базу
func setupTestMongo(t *testing.T) *DB {
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerSelectionTimeout(2*time.Second))
	if err != nil {
		t.Skipf("MongoDB not available for integration tests: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("MongoDB not available for integration tests: %v", err)
	}

	name := "catalog_test_" + uuid.NewString()[:8]
	t.Cleanup(func() {
		_ = client.Database(name).Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	return NewDBForTest(client, name, zap.NewNop())
}

func TestListingRepository_ListPagination(t *testing.T) {
	db := setupTestMongo(t)
	ctx := context.Background()

	docs := make([]any, 0, 25)
	for i := 0; i < 25; i++ {
		docs = append(docs, bson.D{
			{Key: "development", Value: bson.D{{Key: "name", Value: fmt.Sprintf("ЖК %02d", i)}}},
		})
	}
	_, err := db.Database().Collection(unifiedHousesCollection).InsertMany(ctx, docs)
	require.NoError(t, err)

	repo := NewListingRepository(db)

	page, err := repo.List(ctx, "", 9, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(25), page.TotalCount)
	assert.Len(t, page.Documents, 9)

	last, err := repo.List(ctx, "", 18, 9)
	require.NoError(t, err)
	assert.Len(t, last.Documents, 7)
}

func TestListingRepository_SearchAcrossShapes(t *testing.T) {
	db := setupTestMongo(t)
	ctx := context.Background()

	_, err := db.Database().Collection(unifiedHousesCollection).InsertMany(ctx, []any{
		bson.D{{Key: "development", Value: bson.D{{Key: "name", Value: "ЖК Солнечный"}}}},
		bson.D{{Key: "development", Value: bson.D{{Key: "name", Value: "Тихий"}}}},
		bson.D{{Key: "avito", Value: bson.D{{Key: "development", Value: bson.D{{Key: "name", Value: "СОЛНЦЕ"}}}}}},
	})
	require.NoError(t, err)

	repo := NewListingRepository(db)

	page, err := repo.List(ctx, "солн", 0, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalCount)

	page, err = repo.List(ctx, "(", 0, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.TotalCount)
}

func TestListingRepository_GetByID(t *testing.T) {
	db := setupTestMongo(t)
	ctx := context.Background()

	oid := primitive.NewObjectID()
	_, err := db.Database().Collection(unifiedHousesCollection).InsertOne(ctx, bson.D{
		{Key: "_id", Value: oid},
		{Key: "domrf", Value: bson.D{{Key: "name", Value: "Дом"}}},
	})
	require.NoError(t, err)

	repo := NewListingRepository(db)

	doc, err := repo.GetByID(ctx, oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid.Hex(), doc.String("_id"))
	assert.Equal(t, "Дом", doc.String("domrf", "name"))

	_, err = repo.GetByID(ctx, primitive.NewObjectID().Hex())
	assert.True(t, errors.Is(err, errors.ErrComplexNotFound))

	_, err = repo.GetByID(ctx, "not-an-id")
	assert.True(t, errors.Is(err, errors.ErrComplexNotFound))
}

func TestVideoRepository_ListByComplex(t *testing.T) {
	db := setupTestMongo(t)
	ctx := context.Background()

	complexID := primitive.NewObjectID()
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(24 * time.Hour)

	_, err := db.Database().Collection(residentialVideosCollection).InsertMany(ctx, []any{
		bson.M{"complex_id": complexID, "title": "Старое", "url": "https://youtu.be/a", "created_at": older},
		bson.M{"complex_id": complexID, "title": "Новое", "url": "https://youtu.be/b", "created_at": newer},
		bson.M{"complex_id": primitive.NewObjectID(), "title": "Чужое", "url": "x", "created_at": newer},
	})
	require.NoError(t, err)

	_, err = db.Database().Collection(promotionsCollection).InsertMany(ctx, []any{
		bson.M{"complex_id": complexID, "title": "Скидка", "is_active": true, "created_at": newer},
		bson.M{"complex_id": complexID, "title": "Прошлая", "is_active": false, "created_at": older},
	})
	require.NoError(t, err)

	repo := NewVideoRepository(db)

	videos, err := repo.ListByComplex(ctx, complexID.Hex())
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "Новое", videos[0].Title)
	assert.Equal(t, "Старое", videos[1].Title)

	promos, err := repo.ListPromotions(ctx, complexID.Hex())
	require.NoError(t, err)
	require.Len(t, promos, 1)
	assert.Equal(t, "Скидка", promos[0].Title)
	assert.Nil(t, promos[0].ExpiresAt)
}
