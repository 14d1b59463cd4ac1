package restapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ZapLoggerMiddleware logs one line per request.
func ZapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
			zap.Int("size", c.Writer.Size()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logger.Error("Request failed", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("Request rejected", fields...)
		default:
			logger.Info("Request served", fields...)
		}
	}
}

// ClientRateLimiter throttles requests per client IP with a token bucket.
// Limiters of clients idle for longer than the expiry are evicted.
type ClientRateLimiter struct {
	limiters *cache.Cache
	limit    rate.Limit
	burst    int
}

// NewClientRateLimiter allows requestsPerMinute sustained requests per client
// with bursts up to burst.
func NewClientRateLimiter(requestsPerMinute, burst int, idleExpiry time.Duration) *ClientRateLimiter {
	return &ClientRateLimiter{
		limiters: cache.New(idleExpiry, idleExpiry*2),
		limit:    rate.Limit(float64(requestsPerMinute) / 60.0),
		burst:    burst,
	}
}

// Allow reports whether a request from clientIP may proceed now.
func (l *ClientRateLimiter) Allow(clientIP string) bool {
	return l.limiterFor(clientIP).Allow()
}

func (l *ClientRateLimiter) limiterFor(clientIP string) *rate.Limiter {
	if v, found := l.limiters.Get(clientIP); found {
		limiter := v.(*rate.Limiter)
		l.limiters.SetDefault(clientIP, limiter)
		return limiter
	}

	limiter := rate.NewLimiter(l.limit, l.burst)
	if err := l.limiters.Add(clientIP, limiter, cache.DefaultExpiration); err != nil {
		// Another request for the same client won the race.
		if v, found := l.limiters.Get(clientIP); found {
			return v.(*rate.Limiter)
		}
	}
	return limiter
}

// Middleware rejects requests over the limit with 429.
func (l *ClientRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, APIErrorResponse{Error: "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
