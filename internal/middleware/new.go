package middleware

import (
	"time"

	"wardrobe-catalog/pkg/log"
)

// Config holds the per-client rate limit settings.
type Config struct {
	RateLimitEnabled bool
	PerMin           int
	MaxClients       int
	ClientTTL        time.Duration
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitEnabled && cfg.PerMin > 0 {
		mw.limiter = newRateLimiter(cfg.PerMin, cfg.MaxClients, cfg.ClientTTL)
	}
	return mw
}
