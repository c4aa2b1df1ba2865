package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Authorizer is the minimal interface the middleware depends on
type Authorizer interface {
	Authorize(candidate string) bool
}

// AdminKeyMiddleware guards mutating routes with the shared admin secret.
// The credential is taken from the `x-admin-key` header, then the `adminKey`
// query parameter, then an `adminKey` form field (urlencoded or multipart).
func AdminKeyMiddleware(gate Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("x-admin-key")
		if key == "" {
			key = c.Query("adminKey")
		}
		if key == "" {
			key = c.PostForm("adminKey")
		}
		if !gate.Authorize(key) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: invalid admin key"})
			return
		}
		c.Next()
	}
}
