package services

import (
	"context"
	"errors"
	"time"

	"storefront/entity"
	"storefront/repository"

	"go.uber.org/zap"
)

const minPasswordLen = 9

// UserService is the user directory: lookups, account creation and login.
type UserService struct {
	users     repository.UserStore
	hasher    PasswordHasher
	jwtSecret string
	jwtTTL    time.Duration
	log       *zap.Logger
}

func NewUserService(users repository.UserStore, hasher PasswordHasher, secret string, ttl time.Duration, log *zap.Logger) *UserService {
	return &UserService{
		users:     users,
		hasher:    hasher,
		jwtSecret: secret,
		jwtTTL:    ttl,
		log:       log,
	}
}

func (s *UserService) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (s *UserService) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return lookupUser(ctx, s.users, username)
}
