package repository

import (
	"context"
	"sync"
	"time"

	"storefront/entity"

	"github.com/shopspring/decimal"
)

// MemoryStore keeps every entity in process memory. Values are copied on the
// way in and out so callers cannot alias stored state.
type MemoryStore struct {
	mu sync.RWMutex

	items    map[uint]entity.Item
	users    map[uint]entity.User
	carts    map[uint]memCart
	orders   []entity.UserOrder
	nextItem uint
	nextUser uint
	nextCart uint
	nextOrd  uint
}

type memCart struct {
	cart    entity.Cart
	itemIDs []uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[uint]entity.Item),
		users: make(map[uint]entity.User),
		carts: make(map[uint]memCart),
	}
}

func (s *MemoryStore) Items() ItemStore   { return memItems{s} }
func (s *MemoryStore) Users() UserStore   { return memUsers{s} }
func (s *MemoryStore) Carts() CartStore   { return memCarts{s} }
func (s *MemoryStore) Orders() OrderStore { return memOrders{s} }

// SeedItems adds items whose name is not present yet.
func (s *MemoryStore) SeedItems(_ context.Context, items []entity.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range items {
		if s.hasItemNamed(it.Name) {
			continue
		}
		s.nextItem++
		it.ID = s.nextItem
		it.CreatedAt = time.Now()
		it.UpdatedAt = it.CreatedAt
		s.items[it.ID] = it
	}
	return nil
}

func (s *MemoryStore) hasItemNamed(name string) bool {
	for _, it := range s.items {
		if it.Name == name {
			return true
		}
	}
	return false
}

type memItems struct{ s *MemoryStore }

func (m memItems) FindAll(context.Context) ([]entity.Item, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	out := make([]entity.Item, 0, len(m.s.items))
	for id := uint(1); id <= m.s.nextItem; id++ {
		if it, ok := m.s.items[id]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m memItems) FindByID(_ context.Context, id uint) (*entity.Item, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	it, ok := m.s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &it, nil
}

func (m memItems) FindByName(ctx context.Context, name string) ([]entity.Item, error) {
	all, _ := m.FindAll(ctx)
	out := []entity.Item{}
	for _, it := range all {
		if it.Name == name {
			out = append(out, it)
		}
	}
	return out, nil
}

type memUsers struct{ s *MemoryStore }

func (m memUsers) FindByID(_ context.Context, id uint) (*entity.User, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	u, ok := m.s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m memUsers) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	for _, u := range m.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m memUsers) Create(_ context.Context, u *entity.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, existing := range m.s.users {
		if existing.Username == u.Username {
			return ErrDuplicate
		}
	}
	now := time.Now()

	m.s.nextCart++
	cart := entity.Cart{Total: decimal.Zero, Items: []entity.Item{}}
	cart.ID = m.s.nextCart
	cart.CreatedAt, cart.UpdatedAt = now, now
	m.s.carts[cart.ID] = memCart{cart: cart}

	m.s.nextUser++
	u.ID = m.s.nextUser
	u.CartID = cart.ID
	u.CreatedAt, u.UpdatedAt = now, now
	stored := *u
	stored.Cart = nil
	m.s.users[u.ID] = stored
	u.Cart = &cart
	return nil
}

type memCarts struct{ s *MemoryStore }

// FindByID resolves item rows at read time, as a join would.
func (m memCarts) FindByID(_ context.Context, id uint) (*entity.Cart, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	row, ok := m.s.carts[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := row.cart
	c.Items = make([]entity.Item, 0, len(row.itemIDs))
	for _, itemID := range row.itemIDs {
		c.Items = append(c.Items, m.s.items[itemID])
	}
	return &c, nil
}

func (m memCarts) Save(_ context.Context, c *entity.Cart) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	row, ok := m.s.carts[c.ID]
	if !ok {
		return ErrNotFound
	}
	row.itemIDs = make([]uint, 0, len(c.Items))
	for _, it := range c.Items {
		row.itemIDs = append(row.itemIDs, it.ID)
	}
	row.cart.Total = c.Total
	row.cart.UpdatedAt = time.Now()
	m.s.carts[c.ID] = row
	return nil
}

type memOrders struct{ s *MemoryStore }

func (m memOrders) Create(_ context.Context, o *entity.UserOrder) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.nextOrd++
	o.ID = m.s.nextOrd
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	stored := *o
	stored.Items = append([]entity.Item(nil), o.Items...)
	m.s.orders = append(m.s.orders, stored)
	return nil
}

func (m memOrders) FindByUserID(_ context.Context, userID uint) ([]entity.UserOrder, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	out := []entity.UserOrder{}
	for _, o := range m.s.orders {
		if o.UserID != userID {
			continue
		}
		o.Items = append([]entity.Item{}, o.Items...)
		out = append(out, o)
	}
	return out, nil
}
