package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Item struct {
	gorm.Model
	Name        string          `gorm:"index;not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Description string          `json:"description"`
}
