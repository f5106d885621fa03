package relational

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Таблицы владельцев повторяют поля, которые читает сервис; остальная схема сайта здесь не описывается
var ownerTablesDDL = []string{
	`CREATE TABLE IF NOT EXISTS residential_complexes (
		id %[1]s,
		name VARCHAR(200) NOT NULL DEFAULT '',
		city VARCHAR(100),
		district VARCHAR(100),
		street VARCHAR(200),
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION
	)`,
	`CREATE TABLE IF NOT EXISTS secondary_properties (
		id %[1]s,
		name VARCHAR(200) NOT NULL DEFAULT '',
		city VARCHAR(100),
		district VARCHAR(100),
		street VARCHAR(200),
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id %[1]s,
		full_name VARCHAR(200) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS articles (
		id %[1]s,
		title VARCHAR(200) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS special_offers (
		id %[1]s,
		title VARCHAR(200) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS branch_offices (
		id %[1]s,
		name VARCHAR(200) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS company_info (
		id %[1]s,
		company_name VARCHAR(200) NOT NULL DEFAULT ''
	)`,
}

const galleryDDL = `CREATE TABLE IF NOT EXISTS gallery_items (
	id %[1]s,
	owner_kind VARCHAR(50) NOT NULL,
	owner_id BIGINT NOT NULL,
	kind VARCHAR(10) NOT NULL,
	title VARCHAR(200) NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	image_path VARCHAR(500) NOT NULL DEFAULT '',
	video_url TEXT NOT NULL DEFAULT '',
	video_thumbnail VARCHAR(500) NOT NULL DEFAULT '',
	sort_order INTEGER NOT NULL DEFAULT 0 CHECK (sort_order >= 0),
	is_main BOOLEAN NOT NULL DEFAULT FALSE,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at %[2]s NOT NULL
)`

const galleryIndexDDL = `CREATE INDEX IF NOT EXISTS gallery_items_owner_idx
	ON gallery_items (owner_kind, owner_id, kind, sort_order)`

// EnsureSchema создаёт таблицы галереи и владельцев, если их нет
func EnsureSchema(ctx context.Context, db *DB) error {
	pk, ts := "BIGSERIAL PRIMARY KEY", "TIMESTAMPTZ"
	if isSQLite(db) {
		pk, ts = "INTEGER PRIMARY KEY AUTOINCREMENT", "TIMESTAMP"
	}

	statements := make([]string, 0, len(ownerTablesDDL)+2)
	for _, ddl := range ownerTablesDDL {
		statements = append(statements, fmt.Sprintf(ddl, pk))
	}
	statements = append(statements, fmt.Sprintf(galleryDDL, pk, ts), galleryIndexDDL)

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	db.logger.Info("Relational schema ensured", zap.String("driver", db.DriverName()))
	return nil
}

func isSQLite(db *DB) bool {
	return strings.HasPrefix(db.DriverName(), "sqlite")
}
