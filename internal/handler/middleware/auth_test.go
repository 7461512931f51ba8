//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/pkg/jwt"
	"facility-booking/tests/common/authtest"
	"facility-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T, cfg config.JWTConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	duration, err := time.ParseDuration(cfg.Duration)
	require.NoError(t, err)
	auth := middleware.NewAuthMiddleware(jwt.NewService(cfg.Secret, duration))

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		userID, ok := middleware.GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	cfg := config.NewTestConfig().JWT
	router := newAuthRouter(t, cfg)
	tokens := authtest.NewJWTHelper(cfg)

	t.Run("valid bearer token sets the user", func(t *testing.T) {
		userID := uuid.New()
		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, tokens.GenerateToken(t, userID))

		var body map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["user_id"])
	})

	t.Run("access token cookie is accepted", func(t *testing.T) {
		userID := uuid.New()
		cookie := &http.Cookie{Name: "access_token", Value: tokens.GenerateToken(t, userID)}
		w := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/me", nil, []*http.Cookie{cookie}, "")

		var body map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["user_id"])
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	t.Run("expired token", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, tokens.CreateExpiredToken(t, uuid.New()))
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := authtest.NewJWTHelper(config.JWTConfig{Secret: "some-other-secret", Duration: "1h"})
		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, other.GenerateToken(t, uuid.New()))
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}
