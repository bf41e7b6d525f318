package services

import (
	"context"
	"testing"
	"time"

	"storefront/entity"
	"storefront/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	validUsername   = "alice"
	invalidUsername = "nobody"
	validPassword   = "goodpass1"
)

type testEnv struct {
	stores repository.Stores
	users  *UserService
	items  *ItemService
	carts  *CartService
	orders *OrderService
	notes  *recordingNotifier
}

type recordingNotifier struct {
	events []*entity.UserOrder
	names  []string
}

func (r *recordingNotifier) OrderSubmitted(username string, order *entity.UserOrder) {
	r.names = append(r.names, username)
	r.events = append(r.events, order)
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	stores := repository.NewMemoryStores()
	require.NoError(t, stores.Seeder.SeedItems(context.Background(), []entity.Item{
		{Name: "Round Widget", Price: decimal.RequireFromString("2.99"), Description: "round"},
		{Name: "Square Widget", Price: decimal.RequireFromString("1.99"), Description: "square"},
	}))

	log := zap.NewNop()
	locks := NewKeyedMutex()
	notes := &recordingNotifier{}
	return &testEnv{
		stores: stores,
		users:  NewUserService(stores.Users, PlainHasher{}, "secret", time.Hour, log),
		items:  NewItemService(stores.Items),
		carts:  NewCartService(stores.Users, stores.Items, stores.Carts, locks, log),
		orders: NewOrderService(stores.Users, stores.Carts, stores.Orders, locks, notes, log),
		notes:  notes,
	}
}

func (e *testEnv) createUser(t *testing.T, username string) *entity.User {
	t.Helper()
	u, err := e.users.CreateUser(context.Background(), username, validPassword, validPassword)
	require.NoError(t, err)
	return u
}

// Seeded item IDs.
const (
	roundWidget  uint = 1
	squareWidget uint = 2
	missingItem  uint = 99
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
