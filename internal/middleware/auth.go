package middleware

import (
	"net/http" // HTTP status codes

	"contact_system/internal/domain"
	"contact_system/internal/repository/interfaces"

	"github.com/gin-gonic/gin" // Gin web framework
)

const userKey = "user"

// TokenAuthMiddleware resolves the raw session token from the Authorization
// header to a user row and attaches it to the request context. The token is
// carried as-is, without a scheme prefix.
func TokenAuthMiddleware(userRepo interfaces.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "unauthorized"})
			return
		}
		user, err := userRepo.FindByToken(token)
		if err != nil {
			// Unknown and stale tokens fail the same way
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "unauthorized"})
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by TokenAuthMiddleware
func CurrentUser(c *gin.Context) *domain.User {
	user, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	return user.(*domain.User)
}
