package relational

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/realty-catalog/internal/domain"
	"github.com/realty-catalog/internal/domain/repository"
	"github.com/realty-catalog/internal/pkg/errors"
)

var geocodeTables = map[domain.GeocodeTargetKind]string{
	domain.GeocodeResidentialComplex: "residential_complexes",
	domain.GeocodeSecondaryProperty:  "secondary_properties",
}

type geocodeTargetRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewGeocodeTargetRepository(db *DB) repository.GeocodeTargetRepository {
	return &geocodeTargetRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *geocodeTargetRepository) ListMissingCoordinates(
	ctx context.Context,
	kind domain.GeocodeTargetKind,
	limit int,
) ([]*domain.GeocodeTarget, error) {
	table, ok := geocodeTables[kind]
	if !ok {
		return nil, fmt.Errorf("unknown geocode target %q", kind)
	}

	query := fmt.Sprintf(`
		SELECT id,
			COALESCE(name, '') AS name,
			COALESCE(city, '') AS city,
			COALESCE(district, '') AS district,
			COALESCE(street, '') AS street
		FROM %s
		WHERE latitude IS NULL
		ORDER BY id
		LIMIT ?`, table)

	targets := []*domain.GeocodeTarget{}
	if err := r.db.SelectContext(ctx, &targets, r.db.Rebind(query), limit); err != nil {
		r.logger.Error("Failed to list geocode targets", zap.String("table", table), zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}

	for _, t := range targets {
		t.Kind = kind
	}
	return targets, nil
}

func (r *geocodeTargetRepository) SetCoordinates(
	ctx context.Context,
	kind domain.GeocodeTargetKind,
	id int64,
	point domain.Point,
) error {
	table, ok := geocodeTables[kind]
	if !ok {
		return fmt.Errorf("unknown geocode target %q", kind)
	}

	query := r.db.Rebind(fmt.Sprintf(`UPDATE %s SET latitude = ?, longitude = ? WHERE id = ?`, table))
	if _, err := r.db.ExecContext(ctx, query, point.Lat, point.Lon, id); err != nil {
		r.logger.Error("Failed to set coordinates", zap.String("table", table), zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError.Wrap(err)
	}
	return nil
}
