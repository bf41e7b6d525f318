package controllers

import (
	"storefront/pkg/resp"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CreateUserRequest struct {
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type UserController struct {
	Svc *services.UserService
	Log *zap.Logger
}

func NewUserController(s *services.UserService, log *zap.Logger) *UserController {
	return &UserController{Svc: s, Log: log}
}

// GET /api/user/id/:id
func (h *UserController) FindByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := h.Svc.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	resp.OK(c, user)
}

// GET /api/user/:username
func (h *UserController) FindByUsername(c *gin.Context) {
	user, err := h.Svc.FindByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	resp.OK(c, user)
}

// POST /api/user/create
func (h *UserController) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := h.Svc.CreateUser(c.Request.Context(), req.Username, req.Password, req.ConfirmPassword)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	resp.Created(c, user)
}
