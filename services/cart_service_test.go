package services

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"storefront/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countItem(items []entity.Item, id uint) int {
	n := 0
	for _, it := range items {
		if it.ID == id {
			n++
		}
	}
	return n
}

func TestAddToCart_ValidUserAndItem(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, validUsername)

	cart, err := env.carts.AddToCart(context.Background(), validUsername, roundWidget, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "2.99", cart.Total.StringFixed(2))
}

func TestAddToCart_PersistsCart(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, validUsername)
	ctx := context.Background()

	_, err := env.carts.AddToCart(ctx, validUsername, roundWidget, 2)
	require.NoError(t, err)
	_, err = env.carts.AddToCart(ctx, validUsername, squareWidget, 1)
	require.NoError(t, err)

	cart, err := env.carts.GetCart(ctx, validUsername)
	require.NoError(t, err)
	require.Len(t, cart.Items, 3)
	assert.Equal(t, []uint{roundWidget, roundWidget, squareWidget},
		[]uint{cart.Items[0].ID, cart.Items[1].ID, cart.Items[2].ID})
	assert.Equal(t, "7.97", cart.Total.StringFixed(2))
}

func TestAddToCart_InvalidUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.carts.AddToCart(context.Background(), invalidUsername, roundWidget, 1)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddToCart_InvalidItem(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, validUsername)

	_, err := env.carts.AddToCart(context.Background(), validUsername, missingItem, 1)
	assert.ErrorIs(t, err, ErrItemNotFound)

	cart, err := env.carts.GetCart(context.Background(), validUsername)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestAddToCart_ZeroQuantityIsNoop(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, validUsername)

	cart, err := env.carts.AddToCart(context.Background(), validUsername, roundWidget, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Total.IsZero())
}

func TestAddToCart_NegativeQuantityRejected(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, validUsername)

	_, err := env.carts.AddToCart(context.Background(), validUsername, roundWidget, -1)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.carts.RemoveFromCart(context.Background(), validUsername, roundWidget, -1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRemoveFromCart_ValidUserAndItem(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, validUsername)
	ctx := context.Background()

	_, err := env.carts.AddToCart(ctx, validUsername, roundWidget, 2)
	require.NoError(t, err)

	cart, err := env.carts.RemoveFromCart(ctx, validUsername, roundWidget, 1)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "2.99", cart.Total.StringFixed(2))
}

func TestRemoveFromCart_MoreThanPresent(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, validUsername)
	ctx := context.Background()

	_, err := env.carts.AddToCart(ctx, validUsername, roundWidget, 2)
	require.NoError(t, err)
	_, err = env.carts.AddToCart(ctx, validUsername, squareWidget, 1)
	require.NoError(t, err)

	cart, err := env.carts.RemoveFromCart(ctx, validUsername, roundWidget, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, countItem(cart.Items, roundWidget))
	assert.Equal(t, 1, countItem(cart.Items, squareWidget))
	assert.Equal(t, "1.99", cart.Total.StringFixed(2))
}

func TestRemoveFromCart_ItemNotInCart(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, validUsername)

	cart, err := env.carts.RemoveFromCart(context.Background(), validUsername, squareWidget, 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Total.IsZero())
}

func TestRemoveFromCart_InvalidUserAndItem(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, validUsername)

	_, err := env.carts.RemoveFromCart(context.Background(), invalidUsername, roundWidget, 1)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = env.carts.RemoveFromCart(context.Background(), validUsername, missingItem, 1)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestCart_TotalMatchesItemsAfterRandomMutations(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, validUsername)
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		itemID := roundWidget
		if rng.Intn(2) == 0 {
			itemID = squareWidget
		}
		qty := rng.Intn(4)

		var cart *entity.Cart
		var err error
		if rng.Intn(3) == 0 {
			cart, err = env.carts.RemoveFromCart(ctx, validUsername, itemID, qty)
		} else {
			cart, err = env.carts.AddToCart(ctx, validUsername, itemID, qty)
		}
		require.NoError(t, err)
		require.True(t, ComputeTotal(cart.Items).Equal(cart.Total), "step %d: total %s", i, cart.Total)

		stored, err := env.carts.GetCart(ctx, validUsername)
		require.NoError(t, err)
		require.True(t, ComputeTotal(stored.Items).Equal(stored.Total), "step %d: stored total %s", i, stored.Total)
	}
}

func TestCart_ConcurrentAddsAreNotLost(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, validUsername)
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.carts.AddToCart(ctx, validUsername, roundWidget, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	cart, err := env.carts.GetCart(ctx, validUsername)
	require.NoError(t, err)
	assert.Len(t, cart.Items, workers)
	assert.Equal(t, "59.80", cart.Total.StringFixed(2))
}

func TestCart_CarriesOwner(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, validUsername)
	ctx := context.Background()

	cart, err := env.carts.GetCart(ctx, validUsername)
	require.NoError(t, err)
	assert.Equal(t, user.ID, cart.UserID)
	assert.Equal(t, validUsername, cart.Username)

	cart, err = env.carts.AddToCart(ctx, validUsername, roundWidget, 0)
	require.NoError(t, err)
	assert.Equal(t, user.ID, cart.UserID)

	cart, err = env.carts.RemoveFromCart(ctx, validUsername, roundWidget, 1)
	require.NoError(t, err)
	assert.Equal(t, validUsername, cart.Username)
}
