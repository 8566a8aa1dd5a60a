package middleware

import (
	"context"
	"net/http"
	"strings"

	"estatelink/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// TokenBlacklist checks whether an access token JTI has been revoked.
type TokenBlacklist interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// JWTAuth validates the Bearer token, rejects blacklisted tokens and puts
// user_id, role and token jti into the gin context.
func JWTAuth(jwtService *jwt.Service, blacklist TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			abortUnauthorized(c, "Missing Authorization header")
			return
		}
		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "Invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			abortUnauthorized(c, "Empty token")
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		if blacklist != nil && claims.ID != "" {
			revoked, err := blacklist.IsRevoked(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				abortUnauthorized(c, "Token has been revoked")
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("token_jti", claims.ID)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
