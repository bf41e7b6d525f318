package ws

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"storefront/entity"
	"storefront/pkg/resp"
	"storefront/services"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	broadcastBuffer = 64
	sendBuffer      = 16
	writeWait       = 10 * time.Second
)

// OrderHub pushes each submitted order to the websocket connections its owner
// has open.
type OrderHub struct {
	clients    map[string]map[*client]bool // username -> connections
	broadcast  chan OrderEvent
	register   chan *client
	unregister chan *client
	done       chan struct{}
	mu         sync.Mutex
	users      *services.UserService
	log        *zap.Logger
}

// client owns one connection. Only its write loop writes to conn.
type client struct {
	conn     *websocket.Conn
	username string
	send     chan *entity.UserOrder
}

type OrderEvent struct {
	Username string
	Order    *entity.UserOrder
}

func NewOrderHub(users *services.UserService, log *zap.Logger) *OrderHub {
	return &OrderHub{
		clients:    make(map[string]map[*client]bool),
		broadcast:  make(chan OrderEvent, broadcastBuffer),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		users:      users,
		log:        log,
	}
}

// Run serves register, unregister and broadcast until ctx is done, then
// closes every connection. It never writes to a connection itself, so a
// stalled reader cannot hold it up.
func (h *OrderHub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for _, set := range h.clients {
				for cl := range set {
					close(cl.send)
					cl.conn.Close()
				}
			}
			h.clients = make(map[string]map[*client]bool)
			h.mu.Unlock()
			return

		case cl := <-h.register:
			h.mu.Lock()
			if h.clients[cl.username] == nil {
				h.clients[cl.username] = make(map[*client]bool)
			}
			h.clients[cl.username][cl] = true
			h.mu.Unlock()

		case cl := <-h.unregister:
			h.mu.Lock()
			h.remove(cl)
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for cl := range h.clients[ev.Username] {
				select {
				case cl.send <- ev.Order:
				default:
					h.log.Warn("ws client too slow, dropping connection", zap.String("username", ev.Username))
					h.remove(cl)
				}
			}
			h.mu.Unlock()
		}
	}
}

// remove must be called with h.mu held.
func (h *OrderHub) remove(cl *client) {
	if _, ok := h.clients[cl.username][cl]; !ok {
		return
	}
	delete(h.clients[cl.username], cl)
	if len(h.clients[cl.username]) == 0 {
		delete(h.clients, cl.username)
	}
	close(cl.send)
	cl.conn.Close()
}

// OrderSubmitted queues the order for delivery. It never blocks the caller;
// when the queue is full the event is dropped.
func (h *OrderHub) OrderSubmitted(username string, order *entity.UserOrder) {
	select {
	case h.broadcast <- OrderEvent{Username: username, Order: order}:
	default:
		h.log.Warn("order feed full, event dropped", zap.String("username", username), zap.Uint("orderId", order.ID))
	}
}

// Subscribers reports how many connections username has open.
func (h *OrderHub) Subscribers(username string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[username])
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /ws/orders/:username
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	username := c.Param("username")
	user, err := h.users.FindByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		h.log.Error("ws user lookup failed", zap.Error(err))
		resp.ServerError(c)
		return
	}
	if user.ID != utils.CurrentUserID(c) || user.Username != utils.CurrentUsername(c) {
		resp.Forbidden(c, "forbidden")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	cl := &client{conn: conn, username: username, send: make(chan *entity.UserOrder, sendBuffer)}
	select {
	case h.register <- cl:
		go h.write(cl)
		go h.drain(cl)
	case <-h.done:
		conn.Close()
	}
}

// write delivers queued orders until the hub closes cl.send or a write
// fails or times out.
func (h *OrderHub) write(cl *client) {
	defer cl.conn.Close()
	for order := range cl.send {
		cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := cl.conn.WriteJSON(order); err != nil {
			h.log.Warn("ws write failed", zap.String("username", cl.username), zap.Error(err))
			return
		}
	}
	cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
	cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// drain discards client frames until the connection closes; the feed is
// one-way.
func (h *OrderHub) drain(cl *client) {
	defer func() {
		select {
		case h.unregister <- cl:
		case <-h.done:
		}
	}()
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}
