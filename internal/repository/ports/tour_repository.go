package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/travia-app/travia-backend/internal/domain"
)

type TourRepository interface {
	Create(ctx context.Context, tour *domain.Tour) (*domain.Tour, error)
	Update(ctx context.Context, id uuid.UUID, tour *domain.Tour) (*domain.Tour, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Tour, error)
	List(ctx context.Context, filter domain.TourListFilter, limit, offset int) ([]domain.Tour, error)
	Count(ctx context.Context, filter domain.TourListFilter) (int, error)
	ListAll(ctx context.Context) ([]domain.Tour, error)
	// ListWithRefs fetches every tour in insertion order with its country and
	// city rows resolved. Rows whose references no longer exist come back
	// with a nil Country or City rather than being filtered here; the
	// skip policy belongs to the translation layer.
	ListWithRefs(ctx context.Context) ([]domain.TourWithRefs, error)
}
