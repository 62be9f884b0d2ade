package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"solestyle/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newGuardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	w := doRequest(newGuardedRouter(), "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"No token"}`, w.Body.String())
}

func TestAuthMiddleware_MalformedToken(t *testing.T) {
	w := doRequest(newGuardedRouter(), "garbage")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Invalid token"}`, w.Body.String())
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	token, err := utils.GenerateToken("42", testSecret, -time.Minute)
	require.NoError(t, err)

	w := doRequest(newGuardedRouter(), token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Invalid token"}`, w.Body.String())
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	token, err := utils.GenerateToken("42", "other-secret", time.Hour)
	require.NoError(t, err)

	w := doRequest(newGuardedRouter(), token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RawToken(t *testing.T) {
	token, err := utils.GenerateToken("42", testSecret, time.Hour)
	require.NoError(t, err)

	w := doRequest(newGuardedRouter(), token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"42"}`, w.Body.String())
}

func TestAuthMiddleware_BearerPrefix(t *testing.T) {
	token, err := utils.GenerateToken("42", testSecret, time.Hour)
	require.NoError(t, err)

	w := doRequest(newGuardedRouter(), "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"42"}`, w.Body.String())
}
