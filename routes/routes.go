package routes

import (
	"storefront/configs"
	"storefront/controllers"
	"storefront/middlewares"
	"storefront/services"
	"storefront/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Services struct {
	Users  *services.UserService
	Items  *services.ItemService
	Carts  *services.CartService
	Orders *services.OrderService
}

// NewRouter builds the gin engine with the middleware chain and every route.
func NewRouter(cfg *configs.Config, svc Services, hub *ws.OrderHub, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(log), gin.Recovery())
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	RegisterRoutes(r, cfg, svc, hub, log)
	return r
}

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, svc Services, hub *ws.OrderHub, log *zap.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	userCtrl := controllers.NewUserController(svc.Users, log)
	authCtrl := controllers.NewAuthController(svc.Users, log)
	itemCtrl := controllers.NewItemController(svc.Items, log)
	cartCtrl := controllers.NewCartController(svc.Carts, svc.Users, log)
	orderCtrl := controllers.NewOrderController(svc.Orders, svc.Users, log)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)

	r.POST("/login", authCtrl.Login)

	// Users (public)
	u := r.Group("/api/user")
	{
		u.GET("/id/:id", userCtrl.FindByID)
		u.GET("/:username", userCtrl.FindByUsername)
		u.POST("/create", userCtrl.Create)
	}

	// Catalog (public)
	i := r.Group("/api/item")
	{
		i.GET("", itemCtrl.List)
		i.GET("/:id", itemCtrl.Detail)
		i.GET("/name/:name", itemCtrl.ByName)
	}

	// Cart (token owner only)
	cart := r.Group("/api/cart", auth)
	{
		cart.GET("/:username", cartCtrl.Get)
		cart.POST("/addToCart", cartCtrl.Add)
		cart.POST("/removeFromCart", cartCtrl.Remove)
	}

	// Orders (token owner only)
	o := r.Group("/api/order", auth)
	{
		o.POST("/submit/:username", orderCtrl.Submit)
		o.GET("/history/:username", orderCtrl.History)
	}

	r.GET("/ws/orders/:username", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
