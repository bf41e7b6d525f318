package services

import (
	"context"

	"storefront/entity"
	"storefront/repository"

	"go.uber.org/zap"
)

// OrderNotifier is told about every order after it has been stored.
type OrderNotifier interface {
	OrderSubmitted(username string, order *entity.UserOrder)
}

type OrderService struct {
	users    repository.UserStore
	carts    repository.CartStore
	orders   repository.OrderStore
	locks    *KeyedMutex
	notifier OrderNotifier
	log      *zap.Logger
}

func NewOrderService(
	users repository.UserStore,
	carts repository.CartStore,
	orders repository.OrderStore,
	locks *KeyedMutex,
	notifier OrderNotifier,
	log *zap.Logger,
) *OrderService {
	return &OrderService{users: users, carts: carts, orders: orders, locks: locks, notifier: notifier, log: log}
}

// Submit turns the user's current cart into an order. The cart itself is
// left as it is.
func (s *OrderService) Submit(ctx context.Context, username string) (*entity.UserOrder, error) {
	user, err := lookupUser(ctx, s.users, username)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(user.CartID)
	cart, err := s.carts.FindByID(ctx, user.CartID)
	unlock()
	if err != nil {
		return nil, err
	}

	order := &entity.UserOrder{
		UserID: user.ID,
		Items:  append([]entity.Item{}, cart.Items...),
		Total:  ComputeTotal(cart.Items),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info("order submitted",
		zap.String("username", username),
		zap.Uint("orderId", order.ID),
		zap.Int("items", len(order.Items)),
		zap.String("total", order.Total.StringFixed(2)),
	)
	if s.notifier != nil {
		s.notifier.OrderSubmitted(username, order)
	}
	return order, nil
}

func (s *OrderService) GetOrdersForUser(ctx context.Context, username string) ([]entity.UserOrder, error) {
	user, err := lookupUser(ctx, s.users, username)
	if err != nil {
		return nil, err
	}
	return s.orders.FindByUserID(ctx, user.ID)
}
