package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/scheduler-web/internal/httperr"
)

type limiterEntry struct {
	lim  *rate.Limiter
	seen time.Time
}

// RateLimiter keeps one token bucket per key.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*limiterEntry
	r       rate.Limit
	burst   int
	idle    time.Duration
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		clients: make(map[string]*limiterEntry),
		r:       rate.Limit(rps),
		burst:   burst,
		idle:    3 * time.Minute,
	}
}

func (rl *RateLimiter) get(key string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if e, ok := rl.clients[key]; ok {
		e.seen = now
		return e.lim
	}
	l := rate.NewLimiter(rl.r, rl.burst)
	rl.clients[key] = &limiterEntry{lim: l, seen: now}
	return l
}

func (rl *RateLimiter) Allow(key string) bool {
	return rl.get(key, time.Now()).Allow()
}

// Sweep forgets keys not seen for a while.
func (rl *RateLimiter) Sweep(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for k, e := range rl.clients {
		if now.Sub(e.seen) > rl.idle {
			delete(rl.clients, k)
		}
	}
}

// RateLimitMiddleware throttles form posts per visitor. Requests without a
// valid session cookie share the bucket of their client IP, so dropping the
// cookie does not reset the limit. Reads and the /api keystroke endpoints are
// never limited.
func RateLimitMiddleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.Next()
			return
		}
		key := VisitorID(c)
		if key == "" || NewVisitor(c) {
			key = "ip:" + c.ClientIP()
		}
		if !rl.Allow(key) {
			httperr.TooManyRequests(c, "too_many_requests", "Muitas requisições. Aguarde um instante.")
			return
		}
		c.Next()
	}
}
