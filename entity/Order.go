package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UserOrder is a frozen copy of a cart taken at submit time.
type UserOrder struct {
	gorm.Model
	UserID uint  `gorm:"index;not null" json:"userId"`
	User   *User `json:"-"`

	Total decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`

	Items []Item          `gorm:"-" json:"items"`
	Lines []UserOrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
