package controllers

import (
	"storefront/pkg/resp"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderController struct {
	Svc   *services.OrderService
	Users *services.UserService
	Log   *zap.Logger
}

func NewOrderController(s *services.OrderService, users *services.UserService, log *zap.Logger) *OrderController {
	return &OrderController{Svc: s, Users: users, Log: log}
}

// POST /api/order/submit/:username
func (oc *OrderController) Submit(c *gin.Context) {
	username := c.Param("username")
	if !ownsUsername(c, oc.Users, oc.Log, username) {
		return
	}
	order, err := oc.Svc.Submit(c.Request.Context(), username)
	if err != nil {
		respondError(c, oc.Log, err)
		return
	}
	resp.OK(c, order)
}

// GET /api/order/history/:username
func (oc *OrderController) History(c *gin.Context) {
	username := c.Param("username")
	if !ownsUsername(c, oc.Users, oc.Log, username) {
		return
	}
	orders, err := oc.Svc.GetOrdersForUser(c.Request.Context(), username)
	if err != nil {
		respondError(c, oc.Log, err)
		return
	}
	resp.OK(c, orders)
}
