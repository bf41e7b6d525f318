package repository

import (
	"context"

	"storefront/entity"

	"gorm.io/gorm"
)

type ItemRepository struct{ DB *gorm.DB }

func NewItemRepository(db *gorm.DB) *ItemRepository { return &ItemRepository{DB: db} }

func (r *ItemRepository) FindAll(ctx context.Context) ([]entity.Item, error) {
	items := []entity.Item{}
	if err := r.DB.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uint) (*entity.Item, error) {
	var it entity.Item
	if err := r.DB.WithContext(ctx).First(&it, id).Error; err != nil {
		return nil, translate(err)
	}
	return &it, nil
}

func (r *ItemRepository) FindByName(ctx context.Context, name string) ([]entity.Item, error) {
	items := []entity.Item{}
	err := r.DB.WithContext(ctx).
		Where("name = ?", name).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepository) SeedItems(ctx context.Context, items []entity.Item) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range items {
			it := items[i]
			if err := tx.Where(entity.Item{Name: it.Name}).
				Attrs(entity.Item{Price: it.Price, Description: it.Description}).
				FirstOrCreate(&it).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
