package repository

import (
	"context"

	"storefront/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) FindByID(ctx context.Context, id uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Lines.Item").
		First(&c, id).Error
	if err != nil {
		return nil, translate(err)
	}
	c.Items = make([]entity.Item, 0, len(c.Lines))
	for _, l := range c.Lines {
		c.Items = append(c.Items, l.Item)
	}
	c.Lines = nil
	return &c, nil
}

// Save rewrites the cart's occurrence rows in one transaction so a reader
// never sees the total and the rows disagree.
func (r *CartRepository) Save(ctx context.Context, c *entity.Cart) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Cart{}).Where("id = ?", c.ID).Update("total", c.Total)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error; err != nil {
			return err
		}
		if len(c.Items) == 0 {
			return nil
		}
		lines := make([]entity.CartItem, 0, len(c.Items))
		for i, it := range c.Items {
			lines = append(lines, entity.CartItem{CartID: c.ID, ItemID: it.ID, Position: i})
		}
		return tx.Omit(clause.Associations).Create(&lines).Error
	})
}
