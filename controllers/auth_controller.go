package controllers

import (
	"net/http"

	"storefront/pkg/resp"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Svc *services.UserService
	Log *zap.Logger
}

func NewAuthController(s *services.UserService, log *zap.Logger) *AuthController {
	return &AuthController{Svc: s, Log: log}
}

// POST /login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, a.Log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user":  user,
	})
}
