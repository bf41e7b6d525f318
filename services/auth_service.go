package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"storefront/entity"
	"storefront/repository"
	"storefront/utils"

	"go.uber.org/zap"
)

// CreateUser validates the credentials before anything is written, then
// creates the user together with an empty cart.
func (s *UserService) CreateUser(ctx context.Context, username, password, confirmPassword string) (*entity.User, error) {
	username = strings.TrimSpace(username)

	if err := validateNewUser(username, password, confirmPassword); err != nil {
		s.log.Warn("create user rejected", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{Username: username, Password: hashed}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.log.Warn("create user rejected", zap.String("username", username), zap.String("reason", "taken"))
			return nil, validationError("username already taken")
		}
		return nil, err
	}

	s.log.Info("user created", zap.String("username", username), zap.Uint("userId", user.ID))
	return user, nil
}

func validateNewUser(username, password, confirmPassword string) error {
	if username == "" {
		return validationError("username is required")
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return validationError("password must be longer than 8 characters")
	}
	if password != confirmPassword {
		return validationError("passwords do not match")
	}
	return nil
}

// Login checks the credentials and issues a JWT.
func (s *UserService) Login(ctx context.Context, username, password string) (string, *entity.User, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if err := s.hasher.Compare(user.Password, password); err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Username, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	s.log.Info("user logged in", zap.String("username", user.Username))
	return token, user, nil
}
