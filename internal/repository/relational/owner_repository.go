package relational

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/realty-catalog/internal/domain"
	"github.com/realty-catalog/internal/domain/repository"
	"github.com/realty-catalog/internal/pkg/errors"
)

// ownerSource - таблица и поле-метка владельца
type ownerSource struct {
	table string
	label string
}

// ownerSources - типы для видео ссылаются на те же таблицы, что и основные
var ownerSources = map[domain.OwnerKind]ownerSource{
	domain.OwnerResidentialComplex: {table: "residential_complexes", label: "name"},
	domain.OwnerSecondaryProperty:  {table: "secondary_properties", label: "name"},
	domain.OwnerEmployee:           {table: "employees", label: "full_name"},
	domain.OwnerArticle:            {table: "articles", label: "title"},
	domain.OwnerSpecialOffer:       {table: "special_offers", label: "title"},
	domain.OwnerOffice:             {table: "branch_offices", label: "name"},
	domain.OwnerCompany:            {table: "company_info", label: "company_name"},
	domain.OwnerEmployeeVideo:      {table: "employees", label: "full_name"},
	domain.OwnerResidentialVideo:   {table: "residential_complexes", label: "name"},
	domain.OwnerSecondaryVideo:     {table: "secondary_properties", label: "name"},
}

type ownerRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewOwnerRepository(db *DB) repository.OwnerRepository {
	return &ownerRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *ownerRepository) ListOwners(ctx context.Context, kind domain.OwnerKind) ([]domain.Owner, error) {
	src, ok := ownerSources[kind]
	if !ok {
		return nil, errors.ErrInvalidCategory
	}

	query := fmt.Sprintf(
		`SELECT id, COALESCE(%[2]s, '') AS name FROM %[1]s ORDER BY %[2]s, id`,
		src.table, src.label,
	)

	owners := []domain.Owner{}
	if err := r.db.SelectContext(ctx, &owners, query); err != nil {
		r.logger.Error("Failed to list owners",
			zap.String("kind", string(kind)),
			zap.String("table", src.table),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError.Wrap(err)
	}
	return owners, nil
}
