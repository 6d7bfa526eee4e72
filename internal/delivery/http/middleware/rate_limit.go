package middleware

import (
	"net/http"
	"sync"
	"time"

	"cv360-backend/internal/delivery/http/response"
	"cv360-backend/pkg/logger"
	"cv360-backend/pkg/redis"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig controls the fixed-window limiter.
type RateLimitConfig struct {
	Window    time.Duration
	Threshold int
}

type memoryWindow struct {
	count   int
	resetAt time.Time
}

var (
	memoryCounters   = make(map[string]*memoryWindow)
	memoryCountersMu sync.Mutex
)

// RateLimit caps requests per client IP within a fixed window. It counts in
// Redis when a client is configured and falls back to an in-process counter
// otherwise. Applied to the credential endpoints only.
func RateLimit(name string, cfg RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:" + name + ":" + c.ClientIP()

		var count int
		var err error

		if client := redis.Client(); client != nil {
			count, err = incrRedis(c, key, cfg.Window)
			if err != nil {
				// Degrade to in-memory rather than failing the request
				logger.Log.Warn("rate limit redis error", "key", key, "error", err)
				count = incrMemory(key, cfg.Window)
			}
		} else {
			count = incrMemory(key, cfg.Window)
		}

		if count > cfg.Threshold {
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func incrRedis(c *gin.Context, key string, window time.Duration) (int, error) {
	ctx := c.Request.Context()
	client := redis.Client()

	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := client.Expire(ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return int(count), nil
}

func incrMemory(key string, window time.Duration) int {
	memoryCountersMu.Lock()
	defer memoryCountersMu.Unlock()

	now := time.Now()
	w, ok := memoryCounters[key]
	if !ok || now.After(w.resetAt) {
		w = &memoryWindow{resetAt: now.Add(window)}
		memoryCounters[key] = w
	}
	w.count++
	return w.count
}
