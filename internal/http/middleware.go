package http

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// CustomLoggerMiddleware logs one line per request. Only the route pattern and path
// are logged; bodies and query strings may carry card data and are never recorded.
func CustomLoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		logger.LogAttrs(c.Request.Context(), level, "http request",
			slog.String("request_id", requestid.Get(c)),
			slog.String("method", c.Request.Method),
			slog.String("route", c.FullPath()),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}

// limiterIdleTTL is how long a client's limiter survives without requests.
const limiterIdleTTL = time.Hour

// rateLimiterStore holds one token bucket per client IP.
type rateLimiterStore struct {
	limiters sync.Map // client IP -> *rateLimiterEntry
	rps      float64
	burst    int
}

type rateLimiterEntry struct {
	limiter *rate.Limiter

	mu         sync.Mutex
	lastAccess time.Time
}

// RateLimitMiddleware limits each client IP to rps requests per second with the given
// burst. Rejected requests get 429 with a Retry-After header. Idle limiters are
// evicted by a goroutine that stops when ctx is done.
func RateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := &rateLimiterStore{rps: rps, burst: burst}
	go store.evictIdle(ctx, 5*time.Minute, limiterIdleTTL)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		limiter := store.get(clientIP, time.Now())

		if limiter.Allow() {
			c.Next()
			return
		}

		reservation := limiter.Reserve()
		retryAfter := int(math.Ceil(reservation.Delay().Seconds()))
		reservation.Cancel()

		logger.DebugContext(c.Request.Context(), "rate limit exceeded",
			slog.String("client_ip", clientIP),
			slog.Int("retry_after", retryAfter),
		)

		c.Header("Retry-After", strconv.Itoa(retryAfter))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error":   "rate_limit_exceeded",
			"message": "Too many requests from this client, retry after the given delay",
		})
	}
}

func (s *rateLimiterStore) get(ip string, now time.Time) *rate.Limiter {
	if val, ok := s.limiters.Load(ip); ok {
		entry := val.(*rateLimiterEntry)
		entry.touch(now)
		return entry.limiter
	}

	entry := &rateLimiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(s.rps), s.burst),
		lastAccess: now,
	}
	actual, _ := s.limiters.LoadOrStore(ip, entry)
	return actual.(*rateLimiterEntry).limiter
}

func (e *rateLimiterEntry) touch(now time.Time) {
	e.mu.Lock()
	e.lastAccess = now
	e.mu.Unlock()
}

func (e *rateLimiterEntry) idleSince(threshold time.Time) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastAccess.Before(threshold)
}

// evictIdle removes limiters unused for ttl every interval until ctx is done.
func (s *rateLimiterStore) evictIdle(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.evict(now.Add(-ttl))
		}
	}
}

func (s *rateLimiterStore) evict(threshold time.Time) {
	s.limiters.Range(func(key, value any) bool {
		if value.(*rateLimiterEntry).idleSince(threshold) {
			s.limiters.Delete(key)
		}
		return true
	})
}
