package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"soulid/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// ProfileIDKey is the gin context key holding the authenticated profile ID
const ProfileIDKey = "profileID"

// JWTAuthMiddleware validates session tokens and extracts the profile ID
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}
		c.Set(ProfileIDKey, claims.ProfileID) // Store profileID in context
		c.Next()
	}
}
