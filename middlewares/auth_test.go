package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "mw-secret"

func newAuthRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": utils.CurrentUserID(c), "username": utils.CurrentUsername(c)})
	})
	return r
}

func serve(r http.Handler, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	token, err := utils.GenerateToken(3, "alice", secret, time.Hour)
	require.NoError(t, err)
	r := newAuthRouter(AuthMiddleware(secret))

	w := serve(r, "/me", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":3,"username":"alice"}`, w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, serve(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "/me", "garbage").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "/me?token="+token, "").Code)
}

func TestWSAuthMiddleware_AcceptsQueryToken(t *testing.T) {
	token, err := utils.GenerateToken(3, "alice", secret, time.Hour)
	require.NoError(t, err)
	r := newAuthRouter(WSAuthMiddleware(secret))

	assert.Equal(t, http.StatusOK, serve(r, "/me?token="+token, "").Code)
	assert.Equal(t, http.StatusOK, serve(r, "/me", token).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "/me?token=garbage", "").Code)
}
