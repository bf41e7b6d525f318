package services

import (
	"context"

	"storefront/entity"
	"storefront/repository"
)

// ItemService is the read-only item catalog.
type ItemService struct {
	items repository.ItemStore
}

func NewItemService(items repository.ItemStore) *ItemService {
	return &ItemService{items: items}
}

func (s *ItemService) GetAll(ctx context.Context) ([]entity.Item, error) {
	return s.items.FindAll(ctx)
}

func (s *ItemService) GetByID(ctx context.Context, id uint) (*entity.Item, error) {
	return lookupItem(ctx, s.items, id)
}

// GetByName treats an empty match as absence.
func (s *ItemService) GetByName(ctx context.Context, name string) ([]entity.Item, error) {
	items, err := s.items.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrItemNotFound
	}
	return items, nil
}
