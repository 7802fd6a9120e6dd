package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/travia-app/travia-backend/internal/domain"
	"github.com/travia-app/travia-backend/internal/repository/ports"
)

type RegionRepository struct {
	db *sqlx.DB
}

func NewRegionRepo(db *sqlx.DB) *RegionRepository {
	return &RegionRepository{db: db}
}

func (r *RegionRepository) Create(ctx context.Context, region *domain.Region) (*domain.Region, error) {
	const query = `
		INSERT INTO region (name, packages)
		VALUES ($1, $2)
		RETURNING id, name, packages
	`
	var created domain.Region
	if err := r.db.GetContext(ctx, &created, query, region.Name, region.Packages); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *RegionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Region, error) {
	const query = `SELECT id, name, packages FROM region WHERE id = $1`
	var region domain.Region
	if err := r.db.GetContext(ctx, &region, query, id); err != nil {
		return nil, err
	}
	return &region, nil
}

func (r *RegionRepository) FindByName(ctx context.Context, name string) (*domain.Region, error) {
	const query = `SELECT id, name, packages FROM region WHERE name = $1`
	var region domain.Region
	if err := r.db.GetContext(ctx, &region, query, name); err != nil {
		return nil, err
	}
	return &region, nil
}

func (r *RegionRepository) ListAll(ctx context.Context) ([]domain.Region, error) {
	const query = `SELECT id, name, packages FROM region ORDER BY name ASC`
	regions := make([]domain.Region, 0)
	if err := r.db.SelectContext(ctx, &regions, query); err != nil {
		return nil, err
	}
	return regions, nil
}

func (r *RegionRepository) ReplacePackages(ctx context.Context, id uuid.UUID, packages domain.RegionPackages) (*domain.Region, error) {
	const query = `
		UPDATE region
		SET packages = $2
		WHERE id = $1
		RETURNING id, name, packages
	`
	var updated domain.Region
	if err := r.db.GetContext(ctx, &updated, query, id, packages); err != nil {
		return nil, err
	}
	return &updated, nil
}

var _ ports.RegionRepository = (*RegionRepository)(nil)
