package middleware

import (
	"sync"
	"time"

	"go-mrf/internal/shared/apperror"
	"go-mrf/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter keeps one token bucket per key. Buckets idle for longer
// than limiterIdleTTL are dropped on the next sweep.
type KeyedRateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func NewKeyedRateLimiter(limit rate.Limit, burst int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		buckets: make(map[string]*bucket),
		limit:   limit,
		burst:   burst,
		now:     time.Now,
	}
}

// Allow spends one token from key's bucket.
func (l *KeyedRateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > limiterIdleTTL {
		for k, b := range l.buckets {
			if now.Sub(b.lastSeen) > limiterIdleTTL {
				delete(l.buckets, k)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

// Len reports how many buckets are live.
func (l *KeyedRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func limitBy(scope string, limiter *KeyedRateLimiter, key func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		k := key(c)
		if k == "" || limiter.Allow(k) {
			c.Next()
			return
		}
		response.Abort(c, apperror.ToHTTP(apperror.ErrRateLimited).WithDetails(gin.H{"scope": scope}))
	}
}

func RateLimitByIP(limit rate.Limit, burst int) gin.HandlerFunc {
	return limitBy("ip", NewKeyedRateLimiter(limit, burst), func(c *gin.Context) string {
		return c.ClientIP()
	})
}

// RateLimitByUser limits signed-in callers by user_id; anonymous requests pass.
func RateLimitByUser(limit rate.Limit, burst int) gin.HandlerFunc {
	return limitBy("user", NewKeyedRateLimiter(limit, burst), func(c *gin.Context) string {
		return c.GetString(KeyUserID)
	})
}
