package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"daytrack/internal/domain"
)

const contextUserKey = "daytrack.user"

// authRequired extracts the bearer token, resolves it to a user identity and
// attaches the identity to the request context. Requests without a resolvable
// token are rejected with 401.
func (h *Handler) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == "undefined" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		user, err := h.auth.ResolveToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// requestUser returns the identity attached by authRequired.
func requestUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
