package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"shiba-faucet/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards the admin surface. The claim endpoints stay
// anonymous; only registry writes and reconcile triggers need a token.
type AuthMiddleware struct {
	tokens *jwt.Service
}

const ctxRoleKey = "role"

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		if claims.Role != jwt.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

func GetRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}
	r, ok := role.(string)
	return r, ok
}
