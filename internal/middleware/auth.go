// Package middleware provides gin middleware for authentication and
// request logging.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gravadigital/eventi-api/internal/auth"
	"github.com/gravadigital/eventi-api/internal/domain/user"
	"github.com/gravadigital/eventi-api/internal/response"
	"github.com/gravadigital/eventi-api/internal/storage/postgres"
)

// ContextUserKey is the gin context key holding the authenticated user
const ContextUserKey = "current_user"

// Authenticate validates the bearer token and loads the calling user
// into the request context. Refresh tokens are rejected here; they are
// only accepted by the refresh endpoint.
func Authenticate(tokens *auth.TokenService, users postgres.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, "missing bearer token")
			c.Abort()
			return
		}

		claims, err := tokens.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		if auth.TokenType(claims) != auth.TokenTypeAccess {
			response.Unauthorized(c, "token is not an access token")
			c.Abort()
			return
		}

		email, err := auth.Subject(claims)
		if err != nil {
			response.Unauthorized(c, "invalid token claims")
			c.Abort()
			return
		}

		u, err := users.GetByEmail(email)
		if err != nil || u == nil {
			response.Unauthorized(c, "unknown user")
			c.Abort()
			return
		}

		c.Set(ContextUserKey, u)
		c.Next()
	}
}

// RequireRoles rejects the request unless the authenticated user holds
// one of the given roles
func RequireRoles(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		for _, role := range roles {
			if u.Role == role {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "insufficient permissions")
		c.Abort()
	}
}

// CurrentUser returns the authenticated user from the request context,
// or nil when the request is unauthenticated
func CurrentUser(c *gin.Context) *user.User {
	value, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}

	u, ok := value.(*user.User)
	if !ok {
		return nil
	}

	return u
}
