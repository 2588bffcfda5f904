package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

// InitRedisRateLimiter initializes a shared Redis client used by the middleware.
// If addr is empty or the connection fails, redisClient stays nil and limiting
// degrades to the in-process counter below.
func InitRedisRateLimiter(addr, password string, db int) {
	if addr == "" {
		return
	}
	redisClient = redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		// on ping failure, disable redis client to keep server available
		redisClient = nil
	}
}

type windowCounter struct {
	start time.Time
	count int64
}

var localMu sync.Mutex
var localCounters = make(map[string]*windowCounter)

// localIncr is the single-process stand-in for Redis INCR+EXPIRE.
func localIncr(key string, window time.Duration) int64 {
	localMu.Lock()
	defer localMu.Unlock()

	now := time.Now()
	wc, ok := localCounters[key]
	if !ok || now.Sub(wc.start) > window {
		localCounters[key] = &windowCounter{start: now, count: 1}
		return 1
	}
	wc.count++
	return wc.count
}

func incr(key string, window time.Duration) int64 {
	if redisClient == nil {
		return localIncr(key, window)
	}

	ctx := context.Background()
	val, err := redisClient.Incr(ctx, key).Result()
	if err != nil {
		// on Redis error, keep limiting locally rather than failing open
		return localIncr(key, window)
	}
	if val == 1 {
		redisClient.Expire(ctx, key, window)
	}
	return val
}

// RateLimit implements a fixed-window per-IP rate limiter, Redis-backed when
// available. key format: rl:<window_seconds>:<identifier>
func RateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rl:" + strconv.FormatInt(int64(window.Seconds()), 10) + ":" + c.ClientIP()

		val := incr(key, window)
		if val > int64(maxRequests) {
			RLBlocked.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		RLRequests.WithLabelValues(c.FullPath()).Inc()
		c.Next()
	}
}
