package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"tokoapi/internal/platform/response"
)

// RateLimit membatasi laju request secara global dengan satu token bucket.
func RateLimit(requestsPerSecond, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			response.Error(c, http.StatusTooManyRequests, "Terlalu banyak request, coba lagi nanti")
			c.Abort()
			return
		}
		c.Next()
	}
}
