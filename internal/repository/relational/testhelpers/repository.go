package testhelpers

import (
	"context"
	"testing"

	"github.com/realty-catalog/internal/domain/repository"
	"github.com/realty-catalog/internal/repository/relational"
)

// NewDBForTest создаёт relational.DB поверх тестовой базы и накатывает схему
func NewDBForTest(t *testing.T, tdb *TestDB) *relational.DB {
	t.Helper()

	db := relational.NewDBForTest(tdb.DB, tdb.Logger)
	if err := relational.EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("Failed to ensure schema: %v", err)
	}
	return db
}

// NewGalleryRepositoryForTest creates a gallery repository on a migrated test database
func NewGalleryRepositoryForTest(t *testing.T, tdb *TestDB) repository.GalleryRepository {
	return relational.NewGalleryRepository(NewDBForTest(t, tdb))
}

// NewOwnerRepositoryForTest creates an owner repository on a migrated test database
func NewOwnerRepositoryForTest(t *testing.T, tdb *TestDB) repository.OwnerRepository {
	return relational.NewOwnerRepository(NewDBForTest(t, tdb))
}

// NewGeocodeTargetRepositoryForTest creates a geocode target repository on a migrated test database
func NewGeocodeTargetRepositoryForTest(t *testing.T, tdb *TestDB) repository.GeocodeTargetRepository {
	return relational.NewGeocodeTargetRepository(NewDBForTest(t, tdb))
}
