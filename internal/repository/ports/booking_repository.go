package ports

import (
	"context"

	"github.com/travia-app/travia-backend/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
}
