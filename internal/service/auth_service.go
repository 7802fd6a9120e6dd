package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/travia-app/travia-backend/internal/domain"
	"github.com/travia-app/travia-backend/internal/repository/ports"
	"github.com/travia-app/travia-backend/internal/util"
)

// AuthService issues and verifies the bearer credentials the admin surface
// requires. The catalog itself only ever sees the resolved user.
type AuthService struct {
	users ports.UserRepository
	jwt   *util.JWTManager
}

func NewAuthService(users ports.UserRepository, jwtSecret string, sessionTTL time.Duration) *AuthService {
	return &AuthService{users: users, jwt: util.NewJWTManager(jwtSecret, sessionTTL)}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return nil, "", fmt.Errorf("%w: name and email required", ErrValidation)
	}
	if err := util.ValidatePassword(password); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, "", err
	}

	hash, salt, err := util.DerivePassword(password)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		PasswordSalt: salt,
	})
	if err != nil {
		return nil, "", err
	}

	token, _, err := s.jwt.Generate(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !util.VerifyPassword(password, user.PasswordSalt, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, _, err := s.jwt.Generate(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Authenticate resolves a bearer token to its user record.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return nil, errors.New("invalid or expired token")
	}
	user, err := s.users.FindByEmail(ctx, claims.Email)
	if err != nil {
		return nil, errors.New("unknown user")
	}
	return user, nil
}

func (s *AuthService) IsAdmin(user *domain.User) bool {
	return user != nil && user.IsAdmin
}
