package middleware

import (
	"net/http"

	"saas-docvault-platform/internal/auth"
	"saas-docvault-platform/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type AuthMiddleware struct {
	rdb *redis.Client
}

func NewAuthMiddleware(rdb *redis.Client) *AuthMiddleware {
	return &AuthMiddleware{rdb: rdb}
}

// RequireAuth validates the bearer token and exposes the caller's
// identity claims on the gin context. Every tenant-scoped handler
// resolves tenant id and user id through these keys.
func (a *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := utils.ExtractTokenFromHeader(c.GetHeader("Authorization"))
		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error_code": "unauthorized",
				"message":    "Authentication token is required",
			})
			c.Abort()
			return
		}

		claims, err := auth.ValidateAccessToken(tokenString, a.rdb)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error_code": "invalid_token",
				"message":    "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Set("user_id", claims.UserID)
		c.Set("tenant_id", claims.TenantID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// GetUserID returns the authenticated user id, or "".
func GetUserID(c *gin.Context) string {
	return c.GetString("user_id")
}

// GetTenantID returns the caller's tenant id, or "".
func GetTenantID(c *gin.Context) string {
	return c.GetString("tenant_id")
}

// GetRole returns the caller's role, or "".
func GetRole(c *gin.Context) string {
	return c.GetString("role")
}
