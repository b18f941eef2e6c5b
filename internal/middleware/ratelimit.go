package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

// Default fixed-window limits.
const (
	DefaultRateLimit  = 60
	DefaultRateWindow = time.Minute
)

type clientWindow struct {
	start time.Time
	count int
}

// RateLimiter is an in-memory, per-client-IP fixed window limiter.
// Single instance only; there is no shared store across replicas.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	clock   clockwork.Clock
	clients map[string]*clientWindow
}

// NewRateLimiter allows limit requests per client IP in every window.
// Non-positive arguments fall back to the defaults; a nil clock means the real clock.
func NewRateLimiter(limit int, every time.Duration, clock clockwork.Clock) *RateLimiter {
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	if every <= 0 {
		every = DefaultRateWindow
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &RateLimiter{
		limit:   limit,
		window:  every,
		clock:   clock,
		clients: make(map[string]*clientWindow),
	}
}

// Allow records one request for key and reports whether it is within the limit.
func (rl *RateLimiter) Allow(key string) bool {
	now := rl.clock.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.clients[key]
	if !ok || now.Sub(w.start) >= rl.window {
		rl.clients[key] = &clientWindow{start: now, count: 1}
		rl.sweep(now)
		return true
	}
	w.count++
	return w.count <= rl.limit
}

// sweep drops expired windows. Caller holds mu.
func (rl *RateLimiter) sweep(now time.Time) {
	for k, w := range rl.clients {
		if now.Sub(w.start) >= rl.window {
			delete(rl.clients, k)
		}
	}
}

// Middleware aborts with 429 and a dto.ErrorResponse once a client exceeds the limit.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			AbortWithError(c, http.StatusTooManyRequests, "rate limit exceeded", nil)
			return
		}
		c.Next()
	}
}
