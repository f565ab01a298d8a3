package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/jwt"
)

const CtxUser = "callerIdentity"

func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing Authorization header"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader || tokenStr == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token format"},
			)
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token"},
			)
			return
		}

		c.Set(CtxUser, claims.Identity())

		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentUser(c).HasRole(role) {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				gin.H{"error": "access denied"},
			)
			return
		}

		c.Next()
	}
}

// CurrentUser returns the zero Identity when the request was not authenticated.
func CurrentUser(c *gin.Context) user.Identity {
	v, ok := c.Get(CtxUser)
	if !ok {
		return user.Identity{}
	}
	id, _ := v.(user.Identity)
	return id
}
