package testhelpers

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// InsertNamed вставляет строку с одним текстовым полем и возвращает её id
func InsertNamed(db *sqlx.DB, table, column, value string) (int64, error) {
	var id int64
	query := db.Rebind(fmt.Sprintf("INSERT INTO %s (%s) VALUES (?) RETURNING id", table, column))
	if err := db.QueryRowxContext(context.Background(), query, value).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert into %s: %w", table, err)
	}
	return id, nil
}

// InsertAddress вставляет объект с адресом без координат
func InsertAddress(db *sqlx.DB, table, name, city, district, street string) (int64, error) {
	var id int64
	query := db.Rebind(fmt.Sprintf(
		"INSERT INTO %s (name, city, district, street) VALUES (?, ?, ?, ?) RETURNING id", table))
	if err := db.QueryRowxContext(context.Background(), query, name, city, district, street).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert into %s: %w", table, err)
	}
	return id, nil
}
