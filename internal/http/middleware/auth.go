// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements bearer-token authentication. The middleware is
// deliberately optional: requests without an Authorization header continue
// anonymously (guest checkout and the public chatbot depend on this), while a
// header that is present but invalid is rejected outright. Endpoints that
// require an account check for the user id downstream.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenVerifier validates a bearer token and returns the user id it carries.
type TokenVerifier func(token string) (userID string, err error)

// BearerAuth returns middleware that resolves an optional Authorization
// header. On a valid token it stores the user id in the Gin context under
// "userID"; on a malformed or invalid token it aborts with 401 so clients
// never proceed with silently-dropped credentials.
func BearerAuth(verify TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "unauthorized",
				"message": "malformed Authorization header",
			})
			return
		}
		token := strings.TrimSpace(header[len(prefix):])

		uid, err := verify(token)
		if err != nil || uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "unauthorized",
				"message": "invalid or expired token",
			})
			return
		}

		c.Set("userID", uid)
		c.Next()
	}
}
