package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash, never serialized

	CartID uint  `gorm:"uniqueIndex;not null" json:"cartId"`
	Cart   *Cart `json:"-"`

	Orders []UserOrder `json:"-"`
}
