package middleware

import (
	"net/http"
	"sync"

	"gearshare/internal/handler/httperr"
	"gearshare/internal/pkg/config"
	"gearshare/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errs.New("rate limit exceeded")

// RateLimiter throttles per caller: the sharer header when present,
// otherwise the client IP. Limiter state is kept in memory, so limits
// apply per instance.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(cfg.RPS),
		burst:    cfg.Burst,
	}
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(SharerHeader)
		if key == "" {
			key = c.ClientIP()
		}

		if !r.limiterFor(key).Allow() {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests")
			return
		}
		c.Next()
	}
}

func (r *RateLimiter) limiterFor(key string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.limiters[key]
	if !ok {
		l = rate.NewLimiter(r.rps, r.burst)
		r.limiters[key] = l
	}
	return l
}
