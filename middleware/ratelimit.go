package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	rateLimitMax    = 100
	rateLimitWindow = 15 * time.Minute
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware enforces a per-IP budget of 100 requests per 15 minutes
// on public routes. State is in-process; there is no shared store.
func RateLimitMiddleware() gin.HandlerFunc {
	var (
		mu          sync.Mutex
		limiters    = make(map[string]*ipLimiter)
		lastCleanup = time.Now()
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		mu.Lock()
		// Drop idle entries so the map does not grow with one-off clients.
		if time.Since(lastCleanup) > rateLimitWindow {
			for addr, l := range limiters {
				if time.Since(l.lastSeen) > rateLimitWindow {
					delete(limiters, addr)
				}
			}
			lastCleanup = time.Now()
		}

		l, ok := limiters[ip]
		if !ok {
			l = &ipLimiter{
				limiter: rate.NewLimiter(rate.Every(rateLimitWindow/rateLimitMax), rateLimitMax),
			}
			limiters[ip] = l
		}
		l.lastSeen = time.Now()
		mu.Unlock()

		if !l.limiter.Allow() {
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many requests, please try again later",
			})
			return
		}

		c.Next()
	}
}
