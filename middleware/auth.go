package middleware

import (
	"net/http"
	"strings"

	"solestyle/models"
	"solestyle/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates protected routes behind a signed session token.
// The raw token is accepted as-is in the Authorization header; a
// "Bearer " prefix is tolerated as a compatible superset.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.MessageResponse{
				Message: "No token",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ValidateToken(tokenString, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.MessageResponse{
				Message: "Invalid token",
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
