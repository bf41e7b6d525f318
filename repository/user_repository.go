package repository

import (
	"context"

	"storefront/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository talks to the users table only; the cart row is created
// alongside the user.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart := entity.Cart{Total: decimal.Zero}
		if err := tx.Create(&cart).Error; err != nil {
			return err
		}
		u.CartID = cart.ID
		if err := tx.Omit(clause.Associations).Create(u).Error; err != nil {
			return err
		}
		u.Cart = &cart
		return nil
	})
	return translate(err)
}
