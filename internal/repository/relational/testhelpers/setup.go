package testhelpers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// TestDB represents a test database connection
type TestDB struct {
	DB     *sqlx.DB
	Logger *zap.Logger
}

// SetupSQLite открывает файл SQLite во временной директории теста
func SetupSQLite(t *testing.T) *TestDB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.db")
	db, err := sqlx.Connect("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		t.Fatalf("Failed to open sqlite database: %v", err)
	}
	db.SetMaxOpenConns(1)

	tdb := &TestDB{DB: db, Logger: zap.NewNop()}
	t.Cleanup(tdb.Close)
	return tdb
}

// SetupPostgres подключается к тестовому PostgreSQL; тест пропускается, если база недоступна
func SetupPostgres(t *testing.T) *TestDB {
	t.Helper()

	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5433"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "catalog_test"),
		getEnv("TEST_DB_SSLMODE", "disable"),
	)

	var db *sqlx.DB
	var err error
	maxRetries := 3
	retryDelay := 200 * time.Millisecond

	for i := 0; i < maxRetries; i++ {
		db, err = sqlx.Connect("postgres", connStr)
		if err == nil {
			break
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
			retryDelay *= 2
		}
	}
	if err != nil {
		t.Skipf("PostgreSQL not available for integration tests: %v", err)
	}

	tdb := &TestDB{DB: db, Logger: zap.NewNop()}
	t.Cleanup(func() {
		_ = tdb.Cleanup(context.Background())
		tdb.Close()
	})
	return tdb
}

// Close closes the database connection
func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		tdb.DB.Close()
	}
}

// Cleanup очищает таблицы, которые заполняют тесты
func (tdb *TestDB) Cleanup(ctx context.Context) error {
	tables := []string{
		"gallery_items",
		"residential_complexes",
		"secondary_properties",
		"employees",
		"articles",
		"special_offers",
		"branch_offices",
		"company_info",
	}

	for _, table := range tables {
		if _, err := tdb.DB.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			continue
		}
	}
	return nil
}

// getEnv gets environment variable or returns default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
