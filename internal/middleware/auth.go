package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ankitmishra16/Blogger/internal/auth"
)

const userIDKey = "user_id"

// RequireAuth validates the Bearer token and injects user_id into the gin
// context, rejecting the request otherwise.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := bearerUserID(c, tokens)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// OptionalAuth injects user_id when a valid token is present but lets
// anonymous requests through. Used on routes like post viewing and
// commenting where both audiences are allowed.
func OptionalAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := bearerUserID(c, tokens); ok {
			c.Set(userIDKey, userID)
		}
		c.Next()
	}
}

// UserID returns the authenticated user id from the gin context, or (0,
// false) for anonymous requests.
func UserID(c *gin.Context) (int, bool) {
	raw, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := raw.(int)
	return id, ok
}

func bearerUserID(c *gin.Context, tokens *auth.TokenService) (int, bool) {
	header := c.GetHeader("Authorization")
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		return 0, false
	}
	userID, err := tokens.VerifySessionToken(tokenString)
	if err != nil {
		return 0, false
	}
	return userID, true
}
