package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"wardrobe-catalog/pkg/response"
)

// rateLimiter keeps one token bucket per client; idle clients expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, maxClients int, ttl time.Duration) *rateLimiter {
	if maxClients <= 0 {
		maxClients = 1000
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxClients, nil, ttl),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0), // per second
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit rejects clients that exceed their budget with 429.
// It is a no-op when rate limiting is disabled.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}
		ip := c.ClientIP()
		if !m.limiter.allow(ip) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", ip)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
