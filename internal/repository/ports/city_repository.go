package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/travia-app/travia-backend/internal/domain"
)

type CityRepository interface {
	Create(ctx context.Context, city *domain.City) (*domain.City, error)
	Update(ctx context.Context, id uuid.UUID, city *domain.City) (*domain.City, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.City, error)
	List(ctx context.Context, filter domain.CityListFilter, limit, offset int) ([]domain.City, error)
	Count(ctx context.Context, filter domain.CityListFilter) (int, error)
	// ListAll resolves the country name for every row; admin views load the
	// whole collection.
	ListAll(ctx context.Context) ([]domain.City, error)
}
