package middleware

import (
	"net/http"
	"strings"

	"careerpilot_backend/internal/auth"
	"careerpilot_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const clerkUserIDKey = "clerkUserID"

// AuthMiddleware verifies the bearer token issued for the external
// identity and stores the Clerk subject on the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(clerkUserIDKey, claims.ClerkUserID)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.ClerkUserID))
		c.Next()
	}
}

// GetClerkUserID returns the authenticated external identity id, empty
// when the request is anonymous.
func GetClerkUserID(c *gin.Context) string {
	val, exists := c.Get(clerkUserIDKey)
	if !exists {
		return ""
	}
	id, ok := val.(string)
	if !ok {
		return ""
	}
	return id
}
