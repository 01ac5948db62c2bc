package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nitin-trapo/home-construction-ledger/internal/auth/domain"
	"github.com/nitin-trapo/home-construction-ledger/internal/auth/service"
)

// Gin context keys set by RequireAuth.
const (
	ContextUserID   = "userId"
	ContextUserRole = "userRole"
)

// RequireAuth validates the bearer token and stores the caller's
// identity in the gin context.
func RequireAuth(svc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		claims, err := svc.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}

// AdminOnly rejects callers without the superadmin role. Must run after
// RequireAuth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserRole) != domain.RoleSuperadmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
