package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/travia-app/travia-backend/internal/domain"
)

type RegionRepository interface {
	Create(ctx context.Context, region *domain.Region) (*domain.Region, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Region, error)
	FindByName(ctx context.Context, name string) (*domain.Region, error)
	ListAll(ctx context.Context) ([]domain.Region, error)
	// ReplacePackages writes the whole package array back. Last write wins
	// under concurrent edits to the same region.
	ReplacePackages(ctx context.Context, id uuid.UUID, packages domain.RegionPackages) (*domain.Region, error)
}
