package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/travia-app/travia-backend/internal/domain"
	"github.com/travia-app/travia-backend/internal/repository/ports"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	const query = `
		INSERT INTO user_account (name, email, password_hash, password_salt, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, password_hash, password_salt, is_admin, created_at, updated_at
	`
	var created domain.User
	err := r.db.GetContext(ctx, &created, query,
		user.Name, user.Email, user.PasswordHash, user.PasswordSalt, user.IsAdmin)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
		SELECT id, name, email, password_hash, password_salt, is_admin, created_at, updated_at
		FROM user_account
		WHERE email = $1
	`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListAll leaves password columns out of the select entirely.
func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	const query = `
		SELECT id, name, email, is_admin, created_at, updated_at
		FROM user_account
		ORDER BY created_at DESC
	`
	users := make([]domain.User, 0)
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, err
	}
	return users, nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
