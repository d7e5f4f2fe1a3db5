package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-hrfms/internal/middleware"
	"go-hrfms/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware_StampsUserIDOntoRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	var gotUserID, gotGinUserID, gotRole string
	r := gin.New()
	r.Use(middleware.AuthMiddleware())
	r.GET("/indents", func(c *gin.Context) {
		gotUserID = contextutil.GetUserID(c.Request.Context())
		gotGinUserID = c.GetString("user_id")
		gotRole = c.GetString("role")
		c.Status(http.StatusOK)
	})

	token := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": "hr-1",
		"role":    "hr",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/indents", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hr-1", gotUserID, "downstream layers read the user id from the request context")
	assert.Equal(t, "hr-1", gotGinUserID)
	assert.Equal(t, "hr", gotRole)
}

func TestAuthMiddleware_MissingTokenRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.AuthMiddleware())
	r.GET("/indents", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/indents", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_TokenWithoutUserIDRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	r := gin.New()
	r.Use(middleware.AuthMiddleware())
	r.GET("/indents", func(c *gin.Context) { c.Status(http.StatusOK) })

	token := signToken(t, "test-secret", jwt.MapClaims{
		"role": "hr",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/indents", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
