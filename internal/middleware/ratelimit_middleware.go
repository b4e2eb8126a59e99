package middleware

import (
	"net/http"
	"strconv"

	"messenger-backend/internal/redis"
	"messenger-backend/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// AuthRateLimitMiddleware limits auth attempts per client IP. Applied
// to POST /auth only; reads pass through.
func AuthRateLimitMiddleware(limiter *redis.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := limiter.AllowAuth(c.Request.Context(), c.ClientIP())
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("rate limit error"))
			c.Abort()
			return
		}

		setRateLimitHeaders(c, result)

		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, httpdto.NewErrorResponse("rate limit exceeded"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// MessageRateLimitMiddleware limits message posting per sender. The
// messages endpoint is unauthenticated, so the sender is taken from the
// X-User-Id header the clients send, falling back to client IP.
func MessageRateLimitMiddleware(limiter *redis.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		sender := c.GetHeader("X-User-Id")
		if sender == "" {
			sender = c.ClientIP()
		}

		result, err := limiter.AllowMessage(c.Request.Context(), sender)
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("rate limit error"))
			c.Abort()
			return
		}

		setRateLimitHeaders(c, result)

		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, httpdto.NewErrorResponse("message rate limit exceeded"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// setRateLimitHeaders sets standard rate limit response headers
func setRateLimitHeaders(c *gin.Context, result *redis.RateLimitResult) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(int64(result.ResetIn.Seconds()), 10))
}
