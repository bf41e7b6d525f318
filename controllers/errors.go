package controllers

import (
	"errors"
	"strconv"

	"storefront/pkg/resp"
	"storefront/services"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP statuses. Expected outcomes are
// logged below Error so they stand apart from real failures.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	reqID := zap.String("requestId", utils.RequestID(c))
	switch {
	case errors.Is(err, services.ErrNotFound):
		log.Info("not found", reqID, zap.String("reason", err.Error()))
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrValidation):
		log.Warn("validation failed", reqID, zap.String("reason", err.Error()))
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		log.Warn("invalid credentials", reqID)
		resp.Unauthorized(c, err.Error())
	default:
		log.Error("request failed", reqID, zap.Error(err))
		resp.ServerError(c)
	}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// ownsUsername resolves username and checks it is the token's own account.
// An unknown username is a 404; someone else's account is a 403.
func ownsUsername(c *gin.Context, users *services.UserService, log *zap.Logger, username string) bool {
	user, err := users.FindByUsername(c.Request.Context(), username)
	if err != nil {
		respondError(c, log, err)
		return false
	}
	if user.ID != utils.CurrentUserID(c) || user.Username != utils.CurrentUsername(c) {
		resp.Forbidden(c, "forbidden")
		return false
	}
	return true
}
