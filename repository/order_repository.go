package repository

import (
	"context"

	"storefront/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create stores the order header and one line per occurrence, each line
// carrying the unit price at this moment.
func (r *OrderRepository) Create(ctx context.Context, o *entity.UserOrder) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(o).Error; err != nil {
			return err
		}
		if len(o.Items) == 0 {
			return nil
		}
		lines := make([]entity.UserOrderItem, 0, len(o.Items))
		for i, it := range o.Items {
			lines = append(lines, entity.UserOrderItem{
				UserOrderID: o.ID,
				ItemID:      it.ID,
				Position:    i,
				UnitPrice:   it.Price,
			})
		}
		return tx.Omit(clause.Associations).Create(&lines).Error
	})
}

func (r *OrderRepository) FindByUserID(ctx context.Context, userID uint) ([]entity.UserOrder, error) {
	orders := []entity.UserOrder{}
	err := r.DB.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Lines.Item").
		Where("user_id = ?", userID).
		Order("id").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	for i := range orders {
		o := &orders[i]
		o.Items = make([]entity.Item, 0, len(o.Lines))
		for _, l := range o.Lines {
			it := l.Item
			it.Price = l.UnitPrice // price as it was when ordered
			o.Items = append(o.Items, it)
		}
		o.Lines = nil
	}
	return orders, nil
}
