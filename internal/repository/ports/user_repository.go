package ports

import (
	"context"

	"github.com/travia-app/travia-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// ListAll never returns password material; callers serialize rows as-is.
	ListAll(ctx context.Context) ([]domain.User, error)
}
