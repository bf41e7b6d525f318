package entity

// CartItem is one occurrence of an item in a cart.
type CartItem struct {
	ID       uint `gorm:"primaryKey"`
	CartID   uint `gorm:"index;not null"`
	ItemID   uint `gorm:"not null"`
	Item     Item
	Position int `gorm:"not null"`
}
