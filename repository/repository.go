package repository

import (
	"context"
	"errors"
	"strings"

	"storefront/entity"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type ItemStore interface {
	FindAll(ctx context.Context) ([]entity.Item, error)
	FindByID(ctx context.Context, id uint) (*entity.Item, error)
	// FindByName returns an empty slice, not ErrNotFound, when nothing matches.
	FindByName(ctx context.Context, name string) ([]entity.Item, error)
}

type UserStore interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// Create allocates an empty cart and the user in one unit of work and
	// sets u.CartID.
	Create(ctx context.Context, u *entity.User) error
}

type CartStore interface {
	FindByID(ctx context.Context, id uint) (*entity.Cart, error)
	// Save replaces the stored occurrence sequence and total with c.Items and c.Total.
	Save(ctx context.Context, c *entity.Cart) error
}

type OrderStore interface {
	Create(ctx context.Context, o *entity.UserOrder) error
	// FindByUserID returns orders in insertion order.
	FindByUserID(ctx context.Context, userID uint) ([]entity.UserOrder, error)
}

// CatalogSeeder inserts items that are not present yet, matched by name.
type CatalogSeeder interface {
	SeedItems(ctx context.Context, items []entity.Item) error
}

// Stores bundles one backend's implementations.
type Stores struct {
	Items  ItemStore
	Users  UserStore
	Carts  CartStore
	Orders OrderStore
	Seeder CatalogSeeder
}

func NewGormStores(db *gorm.DB) Stores {
	items := NewItemRepository(db)
	return Stores{
		Items:  items,
		Users:  NewUserRepository(db),
		Carts:  NewCartRepository(db),
		Orders: NewOrderRepository(db),
		Seeder: items,
	}
}

func NewMemoryStores() Stores {
	m := NewMemoryStore()
	return Stores{
		Items:  m.Items(),
		Users:  m.Users(),
		Carts:  m.Carts(),
		Orders: m.Orders(),
		Seeder: m,
	}
}

// translate maps gorm errors onto the package sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), isUniqueViolation(err):
		return ErrDuplicate
	default:
		return err
	}
}

// isUniqueViolation covers drivers whose errors gorm does not translate.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
