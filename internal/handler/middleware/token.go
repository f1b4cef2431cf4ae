package middleware

import (
	"venue-booking/internal/pkg/token"

	"github.com/gin-gonic/gin"
)

// ForwardAccessToken makes the caller's bearer token available to outbound
// venue API calls. Requests without one pass through; the venue API decides
// what needs authentication.
func ForwardAccessToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if t, ok := token.FromAuthorizationHeader(c.GetHeader("Authorization")); ok {
			c.Request = c.Request.WithContext(token.WithAccess(c.Request.Context(), t))
		}
		c.Next()
	}
}
