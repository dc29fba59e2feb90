package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsroom/internal/config"
	"newsroom/internal/db"
	"newsroom/internal/user"
)

const contextUserKey = "currentUser"

// Identify resolves the Authorization header if one is present and stores the
// identity in the gin context. It never aborts: handlers that can serve
// anonymous callers (public reads, not-found checks on missing resources)
// proceed without an identity. The header carries the raw token, with no
// "Bearer " prefix.
func Identify(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader("Authorization")
		if tokenStr != "" {
			if u, err := ResolveIdentity(db.DB, cfg.Server.JWTSecret, tokenStr); err == nil {
				c.Set(contextUserKey, u)
			}
		}
		c.Next()
	}
}

// RequireIdentity aborts with 401 when no identity resolves. Used on routes
// where nothing can be answered to an anonymous caller.
func RequireIdentity(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader("Authorization")
		u, err := ResolveIdentity(db.DB, cfg.Server.JWTSecret, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "You are not signed in"}})
			return
		}
		c.Set(contextUserKey, u)
		c.Next()
	}
}

// CurrentUser returns the identity stored by the middleware, or nil for an
// anonymous caller.
func CurrentUser(c *gin.Context) *user.User {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*user.User)
	return u
}
