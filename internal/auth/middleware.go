package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys set by the middleware
const (
	ContextJudgeID         = "judge_id"
	ContextJudgeExternalID = "judge_external_id"
	ContextIsAdmin         = "is_admin"
	ContextClaims          = "judge_claims"
)

// AuthMiddleware provides JWT authentication middleware for judge endpoints
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireJudge validates the bearer token and sets the judge context
func (m *AuthMiddleware) RequireJudge() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(ContextJudgeID, claims.JudgeID)
		c.Set(ContextJudgeExternalID, claims.ExternalID)
		c.Set(ContextIsAdmin, claims.IsAdmin)
		c.Set(ContextClaims, claims)

		c.Next()
	}
}

// RequireAdmin rejects callers whose token lacks the admin claim. Runs after RequireJudge.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get(ContextIsAdmin)
		if !exists || isAdmin != true {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin privileges required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// JudgeIDFromContext extracts the authenticated judge id set by RequireJudge
func JudgeIDFromContext(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextJudgeID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
