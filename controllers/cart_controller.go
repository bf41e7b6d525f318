package controllers

import (
	"storefront/pkg/resp"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ModifyCartRequest struct {
	Username string `json:"username" binding:"required"`
	ItemID   uint   `json:"itemId" binding:"required"`
	Quantity int    `json:"quantity"`
}

type CartController struct {
	Svc   *services.CartService
	Users *services.UserService
	Log   *zap.Logger
}

func NewCartController(s *services.CartService, users *services.UserService, log *zap.Logger) *CartController {
	return &CartController{Svc: s, Users: users, Log: log}
}

// GET /api/cart/:username
func (h *CartController) Get(c *gin.Context) {
	username := c.Param("username")
	if !ownsUsername(c, h.Users, h.Log, username) {
		return
	}
	cart, err := h.Svc.GetCart(c.Request.Context(), username)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	resp.OK(c, cart)
}

// POST /api/cart/addToCart
func (h *CartController) Add(c *gin.Context) {
	var req ModifyCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !ownsUsername(c, h.Users, h.Log, req.Username) {
		return
	}
	cart, err := h.Svc.AddToCart(c.Request.Context(), req.Username, req.ItemID, req.Quantity)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	resp.OK(c, cart)
}

// POST /api/cart/removeFromCart
func (h *CartController) Remove(c *gin.Context) {
	var req ModifyCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !ownsUsername(c, h.Users, h.Log, req.Username) {
		return
	}
	cart, err := h.Svc.RemoveFromCart(c.Request.Context(), req.Username, req.ItemID, req.Quantity)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	resp.OK(c, cart)
}
