package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis
	KeyPrefix string
	// Redis client; nil uses the in-memory window
	Redis *goredis.Client
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	count   int
	resetAt time.Time
	evicted bool // set by sweep once the entry is no longer in the map
	mu      sync.Mutex
}

// memoryLimiter is the per-middleware in-memory fallback store
type memoryLimiter struct {
	entries   sync.Map
	sweepMu   sync.Mutex
	nextSweep time.Time
}

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// ContactRateLimitConfig limits contact form submissions per client IP
func ContactRateLimitConfig(limit int, window time.Duration, client *goredis.Client) RateLimitConfig {
	if limit <= 0 {
		limit = 5
	}
	if window <= 0 {
		window = time.Minute
	}
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:contact:",
		Redis:     client,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// RateLimitMiddleware creates a rate limiting middleware with the given config.
// Uses Redis when available and falls back to memory on Redis errors.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	store := &memoryLimiter{}

	return func(c *gin.Context) {
		fullKey := config.KeyPrefix + config.KeyFunc(c)
		now := time.Now()

		var count int
		var resetAt time.Time

		if config.Redis != nil {
			var err error
			count, resetAt, err = checkRateLimitRedis(c.Request.Context(), config.Redis, fullKey, config)
			if err != nil {
				logger.Log.Warn("Rate limit falling back to memory", "error", err)
				count, resetAt = store.check(fullKey, config, now)
			}
		} else {
			count, resetAt = store.check(fullKey, config, now)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Info("Rate limit exceeded", "key", fullKey, "path", c.FullPath())
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(config.Limit-count))
		c.Next()
	}
}

// checkRateLimitRedis checks rate limit using Redis with atomic Lua script
func checkRateLimitRedis(ctx context.Context, client *goredis.Client, key string, config RateLimitConfig) (int, time.Time, error) {
	ttlSeconds := int(config.Window.Seconds())

	result, err := client.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

// check counts a request for key in the current window
func (m *memoryLimiter) check(key string, config RateLimitConfig, now time.Time) (int, time.Time) {
	m.sweep(now, config.Window)

	for {
		entryI, _ := m.entries.LoadOrStore(key, &rateLimitEntry{
			resetAt: now.Add(config.Window),
		})
		entry := entryI.(*rateLimitEntry)

		entry.mu.Lock()
		if entry.evicted {
			// Swept between load and lock; count against the live entry instead
			entry.mu.Unlock()
			continue
		}
		count, resetAt := entry.hit(config.Window, now)
		entry.mu.Unlock()
		return count, resetAt
	}
}

// hit records one request; the caller holds e.mu
func (e *rateLimitEntry) hit(window time.Duration, now time.Time) (int, time.Time) {
	if now.After(e.resetAt) {
		e.count = 0
		e.resetAt = now.Add(window)
	}
	e.count++

	return e.count, e.resetAt
}

// sweep drops expired entries at most once per window
func (m *memoryLimiter) sweep(now time.Time, window time.Duration) {
	m.sweepMu.Lock()
	if now.Before(m.nextSweep) {
		m.sweepMu.Unlock()
		return
	}
	m.nextSweep = now.Add(window)
	m.sweepMu.Unlock()

	m.entries.Range(func(key, value interface{}) bool {
		entry := value.(*rateLimitEntry)
		entry.mu.Lock()
		if now.After(entry.resetAt) {
			entry.evicted = true
			m.entries.Delete(key)
		}
		entry.mu.Unlock()
		return true
	})
}
