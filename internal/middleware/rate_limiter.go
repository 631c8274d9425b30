package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/MugaboVedaste/e-comerce-Kush/internal/apierror"

	"github.com/gin-gonic/gin"
)

// Fixed-window request counting per client IP. Each middleware instance owns
// its map, so the login limiter and the general API limiter don't share
// counters. Stale entries are swept inline instead of by a background
// goroutine; the sweep runs at most once per window.

type visitor struct {
	count   int
	resetAt time.Time
}

type ipLimiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	message   string
	visitors  map[string]*visitor
	nextSweep time.Time
}

func newIPLimiter(limit int, window time.Duration, message string) *ipLimiter {
	return &ipLimiter{
		limit:     limit,
		window:    window,
		message:   message,
		visitors:  make(map[string]*visitor),
		nextSweep: time.Now().Add(window),
	}
}

// allow counts one request for ip and reports whether it is still within
// the limit.
func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.After(l.nextSweep) {
		for addr, v := range l.visitors {
			if now.After(v.resetAt) {
				delete(l.visitors, addr)
			}
		}
		l.nextSweep = now.Add(l.window)
	}

	v, ok := l.visitors[ip]
	if !ok || now.After(v.resetAt) {
		v = &visitor{resetAt: now.Add(l.window)}
		l.visitors[ip] = v
	}
	v.count++
	return v.count <= l.limit
}

func (l *ipLimiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.message))
			return
		}
		c.Next()
	}
}

// RateLimiter is the general API limiter applied to every route.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newIPLimiter(limit, window, "too many requests, try again shortly").handler()
}

// LoginRateLimiter keeps credential guessing slow: 20 attempts per minute
// per IP on the login route.
func LoginRateLimiter() gin.HandlerFunc {
	return newIPLimiter(20, time.Minute, "too many login attempts, try again in a minute").handler()
}
