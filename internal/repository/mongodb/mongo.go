package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/realty-catalog/internal/config"
)

const (
	unifiedHousesCollection     = "unified_houses"
	residentialVideosCollection = "residential_videos"
	promotionsCollection        = "promotions"
)

type DB struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

func New(cfg *config.MongoConfig, logger *zap.Logger) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.Timeout).
		SetServerSelectionTimeout(cfg.Timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info("MongoDB connected", zap.String("database", cfg.Database))

	return &DB{
		client: client,
		db:     client.Database(cfg.Database),
		logger: logger,
	}, nil
}

func (d *DB) Close() error {
	d.logger.Info("Closing MongoDB connection")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return d.client.Disconnect(ctx)
}

func (d *DB) Health(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

func (d *DB) Database() *mongo.Database {
	return d.db
}

// NewDBForTest оборачивает готовую базу для тестов
func NewDBForTest(client *mongo.Client, database string, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{client: client, db: client.Database(database), logger: logger}
}
