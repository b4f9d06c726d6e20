package middleware

import (
	"TnenntAdmin/utils"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter hands out one token bucket per client IP.
type RateLimiter struct {
	limiters sync.Map // ip -> *rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewRateLimiter allows perMinute requests per client, all of them usable
// in a burst.
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	return &RateLimiter{
		limit: rate.Every(time.Minute / time.Duration(perMinute)),
		burst: perMinute,
	}
}

func (r *RateLimiter) limiter(key string) *rate.Limiter {
	actual, _ := r.limiters.LoadOrStore(key, rate.NewLimiter(r.limit, r.burst))
	return actual.(*rate.Limiter)
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.limiter(c.ClientIP()).Allow() {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Too many requests")
			return
		}
		c.Next()
	}
}
