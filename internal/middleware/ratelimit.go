package middleware

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// maxTrackedClients caps the per-IP limiter cache. Spoofed forwarded
// headers can mint arbitrary client IPs, so the cache evicts the least
// recently seen client instead of growing without bound.
const maxTrackedClients = 4096

type ipLimiters struct {
	mu    sync.Mutex
	cache *lru.Cache[string, *rate.Limiter]
	rps   rate.Limit
	burst int
}

func newIPLimiters(rps rate.Limit, burst, size int) (*ipLimiters, error) {
	cache, err := lru.New[string, *rate.Limiter](size)
	if err != nil {
		return nil, err
	}
	return &ipLimiters{cache: cache, rps: rps, burst: burst}, nil
}

func (l *ipLimiters) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.cache.Get(ip)
	if !ok {
		limiter = rate.NewLimiter(l.rps, l.burst)
		l.cache.Add(ip, limiter)
	}
	return limiter
}

// ChatRateLimit throttles the chat endpoint per client IP, using the
// configured per-minute budget as both refill rate and burst.
func (m Middleware) ChatRateLimit() gin.HandlerFunc {
	perMin := m.cfg.Chat.RateLimitPerMin
	if perMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiters, err := newIPLimiters(rate.Limit(float64(perMin)/60.0), perMin, maxTrackedClients)
	if err != nil {
		m.l.Errorf(context.Background(), "middleware: build rate limiter cache: %v", err)
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ip := clientIP(c.Request)
		if !limiters.get(ip).Allow() {
			m.l.Warnf(c.Request.Context(), "middleware: rate limit exceeded for %s", ip)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error_code": http.StatusTooManyRequests,
				"message":    "too many requests",
			})
			return
		}
		c.Next()
	}
}
