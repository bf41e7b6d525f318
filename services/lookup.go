package services

import (
	"context"
	"errors"

	"storefront/entity"
	"storefront/repository"
)

func lookupUser(ctx context.Context, users repository.UserStore, username string) (*entity.User, error) {
	u, err := users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func lookupItem(ctx context.Context, items repository.ItemStore, id uint) (*entity.Item, error) {
	it, err := items.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	return it, err
}
