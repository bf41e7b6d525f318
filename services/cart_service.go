package services

import (
	"context"

	"storefront/entity"
	"storefront/repository"

	"go.uber.org/zap"
)

type CartService struct {
	users repository.UserStore
	items repository.ItemStore
	carts repository.CartStore
	locks *KeyedMutex
	log   *zap.Logger
}

func NewCartService(users repository.UserStore, items repository.ItemStore, carts repository.CartStore, locks *KeyedMutex, log *zap.Logger) *CartService {
	return &CartService{users: users, items: items, carts: carts, locks: locks, log: log}
}

func (s *CartService) GetCart(ctx context.Context, username string) (*entity.Cart, error) {
	user, err := lookupUser(ctx, s.users, username)
	if err != nil {
		return nil, err
	}
	cart, err := s.carts.FindByID(ctx, user.CartID)
	if err != nil {
		return nil, err
	}
	withOwner(cart, user)
	return cart, nil
}

func withOwner(cart *entity.Cart, user *entity.User) {
	cart.UserID = user.ID
	cart.Username = user.Username
}

// AddToCart appends quantity occurrences of the item. A zero quantity leaves
// the cart untouched.
func (s *CartService) AddToCart(ctx context.Context, username string, itemID uint, quantity int) (*entity.Cart, error) {
	return s.mutate(ctx, username, itemID, quantity, func(items []entity.Item, it entity.Item) []entity.Item {
		for i := 0; i < quantity; i++ {
			items = append(items, it)
		}
		return items
	})
}

// RemoveFromCart drops up to quantity occurrences of the item, earliest
// first. Asking for more than the cart holds empties it of that item.
func (s *CartService) RemoveFromCart(ctx context.Context, username string, itemID uint, quantity int) (*entity.Cart, error) {
	return s.mutate(ctx, username, itemID, quantity, func(items []entity.Item, it entity.Item) []entity.Item {
		kept := make([]entity.Item, 0, len(items))
		removed := 0
		for _, cur := range items {
			if cur.ID == it.ID && removed < quantity {
				removed++
				continue
			}
			kept = append(kept, cur)
		}
		return kept
	})
}

func (s *CartService) mutate(
	ctx context.Context,
	username string,
	itemID uint,
	quantity int,
	apply func(items []entity.Item, it entity.Item) []entity.Item,
) (*entity.Cart, error) {
	user, err := lookupUser(ctx, s.users, username)
	if err != nil {
		return nil, err
	}
	item, err := lookupItem(ctx, s.items, itemID)
	if err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, validationError("quantity must not be negative")
	}

	unlock := s.locks.Lock(user.CartID)
	defer unlock()

	cart, err := s.carts.FindByID(ctx, user.CartID)
	if err != nil {
		return nil, err
	}
	withOwner(cart, user)
	if quantity == 0 {
		return cart, nil
	}

	cart.Items = apply(cart.Items, *item)
	cart.Total = ComputeTotal(cart.Items)
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}

	s.log.Info("cart updated",
		zap.String("username", username),
		zap.Uint("cartId", cart.ID),
		zap.Uint("itemId", itemID),
		zap.Int("quantity", quantity),
		zap.String("total", cart.Total.StringFixed(2)),
	)
	return cart, nil
}
