package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCartCookie is the cookie carrying the anonymous cart id.
	SessionCartCookie = "sessionCartId"
	// SessionCartKey is the gin context key the middleware stores the id under.
	SessionCartKey = "session_cart_id"

	sessionCartMaxAge = 7 * 24 * 60 * 60
)

// EnsureSessionCartID assigns every browser an opaque session cart id. A
// request without the cookie gets a fresh UUID set on the response; either
// way the id ends up in the gin context for downstream handlers.
func EnsureSessionCartID(c *gin.Context) {
	id, err := c.Cookie(SessionCartCookie)
	if err != nil || id == "" {
		id = uuid.NewString()
		c.SetCookie(SessionCartCookie, id, sessionCartMaxAge, "/", "", false, false)
	}
	c.Set(SessionCartKey, id)
	c.Next()
}
