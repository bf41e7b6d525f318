package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart holds the user's item occurrences. Items is the in-memory view of
// Lines; repeated entries represent quantity. The owner lives on User.CartID,
// so UserID and Username are filled in by the cart service, not stored.
type Cart struct {
	gorm.Model
	UserID   uint            `gorm:"-" json:"userId"`
	Username string          `gorm:"-" json:"username"`
	Total    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total"`

	Items []Item     `gorm:"-" json:"items"`
	Lines []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
