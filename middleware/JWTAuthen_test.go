package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func protectedRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	router.GET("/protected", handlers...)
	return router
}

func getWithToken(router *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAccessTokenMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	router := protectedRouter(AccessTokenMiddleware())

	t.Run("missing header", func(t *testing.T) {
		w := getWithToken(router, "")
		assert.Equal(t, 401, w.Code)
	})

	t.Run("malformed token", func(t *testing.T) {
		w := getWithToken(router, "not-a-token")
		assert.Equal(t, 403, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signToken(t, "other-secret", jwt.MapClaims{
			"userId": 7,
			"exp":    time.Now().Add(time.Hour).Unix(),
		})
		w := getWithToken(router, token)
		assert.Equal(t, 403, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, "test-secret", jwt.MapClaims{
			"userId": 7,
			"exp":    time.Now().Add(-time.Hour).Unix(),
		})
		w := getWithToken(router, token)
		assert.Equal(t, 403, w.Code)
	})

	t.Run("missing userId claim", func(t *testing.T) {
		token := signToken(t, "test-secret", jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		w := getWithToken(router, token)
		assert.Equal(t, 401, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, "test-secret", jwt.MapClaims{
			"userId": 7,
			"exp":    time.Now().Add(time.Hour).Unix(),
		})
		w := getWithToken(router, token)
		assert.Equal(t, 200, w.Code)
	})
}

func TestAdminTokenMiddleware(t *testing.T) {
	t.Setenv("JWT_ADMIN_SECRET_KEY", "admin-secret")
	router := protectedRouter(AdminTokenMiddleware())

	t.Run("user token rejected", func(t *testing.T) {
		token := signToken(t, "admin-secret", jwt.MapClaims{
			"userId": 7,
			"exp":    time.Now().Add(time.Hour).Unix(),
		})
		w := getWithToken(router, token)
		assert.Equal(t, 401, w.Code)
	})

	t.Run("valid admin token", func(t *testing.T) {
		token := signToken(t, "admin-secret", jwt.MapClaims{
			"adminId":        3,
			"organizationId": "org-42",
			"exp":            time.Now().Add(time.Hour).Unix(),
		})
		w := getWithToken(router, token)
		assert.Equal(t, 200, w.Code)
	})
}

func TestPermissionMiddleware(t *testing.T) {
	t.Setenv("JWT_ADMIN_SECRET_KEY", "admin-secret")
	router := protectedRouter(AdminTokenMiddleware(), PermissionMiddleware("edit_cases"))

	adminToken := func(permissions []string) string {
		return signToken(t, "admin-secret", jwt.MapClaims{
			"adminId":        3,
			"organizationId": "org-42",
			"permissions":    permissions,
			"exp":            time.Now().Add(time.Hour).Unix(),
		})
	}

	t.Run("permission granted", func(t *testing.T) {
		w := getWithToken(router, adminToken([]string{"view_cases", "edit_cases"}))
		assert.Equal(t, 200, w.Code)
	})

	t.Run("permission missing", func(t *testing.T) {
		w := getWithToken(router, adminToken([]string{"view_cases"}))
		assert.Equal(t, 403, w.Code)
	})

	t.Run("no permissions claim", func(t *testing.T) {
		token := signToken(t, "admin-secret", jwt.MapClaims{
			"adminId": 3,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		w := getWithToken(router, token)
		assert.Equal(t, 403, w.Code)
	})
}
