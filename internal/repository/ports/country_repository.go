package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/travia-app/travia-backend/internal/domain"
)

type CountryRepository interface {
	Create(ctx context.Context, country *domain.Country) (*domain.Country, error)
	Update(ctx context.Context, id uuid.UUID, country *domain.Country) (*domain.Country, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Country, error)
	List(ctx context.Context, filter domain.CountryListFilter, limit, offset int) ([]domain.Country, error)
	Count(ctx context.Context, filter domain.CountryListFilter) (int, error)
	ListAll(ctx context.Context) ([]domain.Country, error)
}
