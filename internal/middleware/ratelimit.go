package middleware

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewIPRateLimiter builds an in-memory limiter from a formatted rate such as "100-M".
func NewIPRateLimiter(formatted string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", formatted, err)
	}
	return limiter.New(memory.NewStore(), rate), nil
}

// RateLimit throttles API clients by IP. Rejected requests get 429 with a
// Retry-After header; a limiter store failure lets the request through.
func RateLimit(clientLimiter *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		logger := GetLoggerFromCtx(c.Request.Context()).With(slog.String("client_ip", clientIP))

		quota, err := clientLimiter.Get(c.Request.Context(), clientIP)
		if err != nil {
			logger.Warn("Client quota unavailable, serving unthrottled", slog.String("error", err.Error()))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(quota.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(quota.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(quota.Reset, 10))
		if quota.Reached {
			wait := time.Until(time.Unix(quota.Reset, 0))
			retryAfter := int64(math.Ceil(wait.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			logger.Info("Client over request quota", slog.Int64("quota", quota.Limit), slog.Int64("retry_after_s", retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": fmt.Sprintf("request quota of %d exceeded; retry in %ds", quota.Limit, retryAfter),
			})
			return
		}

		c.Next()
	}
}
