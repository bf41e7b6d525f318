package entity

import (
	"github.com/shopspring/decimal"
)

// UserOrderItem keeps the unit price the item had when the order was placed.
type UserOrderItem struct {
	ID          uint `gorm:"primaryKey"`
	UserOrderID uint `gorm:"index;not null"`
	ItemID      uint `gorm:"not null"`
	Item        Item
	Position    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}
