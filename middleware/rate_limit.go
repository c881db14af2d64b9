package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// limitCounter counts requests per client key within the current window
type limitCounter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int, error)
}

// memoryCounter implements a fixed-window counter in process memory
type memoryCounter struct {
	mu        sync.Mutex
	counts    map[string]int
	lastReset time.Time
}

func newMemoryCounter() *memoryCounter {
	return &memoryCounter{
		counts:    make(map[string]int),
		lastReset: time.Now(),
	}
}

func (m *memoryCounter) Incr(_ context.Context, key string, window time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Reset if window has passed
	if time.Since(m.lastReset) > window {
		m.counts = make(map[string]int)
		m.lastReset = time.Now()
	}

	m.counts[key]++
	return m.counts[key], nil
}

// redisCounter keeps the window counters in Redis so limits hold across
// multiple instances
type redisCounter struct {
	client *redis.Client
}

func (r *redisCounter) Incr(ctx context.Context, key string, window time.Duration) (int, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return int(count), nil
}

// RateLimit limits requests per client IP with an in-process counter
func RateLimit(rate int, window time.Duration) gin.HandlerFunc {
	return rateLimit(newMemoryCounter(), rate, window)
}

// RateLimitRedis limits requests per client IP with Redis-backed counters
func RateLimitRedis(client *redis.Client, rate int, window time.Duration) gin.HandlerFunc {
	return rateLimit(&redisCounter{client: client}, rate, window)
}

func rateLimit(counter limitCounter, rate int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		key := fmt.Sprintf("ratelimit:%s", clientIP)

		count, err := counter.Incr(c.Request.Context(), key, window)
		if err != nil {
			// Counter backend down: let the request through rather than
			// turning a Redis outage into an API outage
			slog.Warn("rate limit counter unavailable",
				"error", err,
				"request_id", GetRequestID(c),
			)
			c.Next()
			return
		}

		if count > rate {
			slog.Warn("rate limit exceeded",
				"client_ip", clientIP,
				"request_id", GetRequestID(c),
			)

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}

		c.Next()
	}
}
