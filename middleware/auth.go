package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hostel-backend/services"
)

const claimsKey = "claims"

// RequireAuth validates the Bearer token and stores its claims on the context.
func RequireAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authorization header is missing", "code": "UNAUTHORIZED"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := tokens.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Token is expired or invalid", "code": "UNAUTHORIZED"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAdmin gates a route on the admin claim. It must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Claims not found", "code": "UNAUTHORIZED"})
			return
		}
		if !claims.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "Access denied. Admin privileges required.", "code": "ADMIN_REQUIRED"})
			return
		}
		c.Next()
	}
}

// ClaimsFrom returns the token claims stored by RequireAuth.
func ClaimsFrom(c *gin.Context) (*services.Claims, bool) {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*services.Claims)
	return claims, ok
}
