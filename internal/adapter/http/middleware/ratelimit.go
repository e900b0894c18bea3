package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

// RateLimitRule caps requests per client IP within a sliding window for one
// route template ("METHOD /path").
type RateLimitRule struct {
	Requests int
	Window   time.Duration
}

type rateLimitEntry struct {
	count     int
	resetTime time.Time
}

// RateLimitRecorder is satisfied by metrics.AppMetrics; nil disables counting.
type RateLimitRecorder interface {
	RecordRateLimitHit(path string)
}

type RateLimiter struct {
	cache    *cache.Cache
	rules    map[string]RateLimitRule
	fallback RateLimitRule
	logger   zerolog.Logger
	recorder RateLimitRecorder
	mu       sync.Mutex
}

// NewRateLimiter applies tighter limits to login and bulk-delete routes and a
// generous default everywhere else.
func NewRateLimiter(logger zerolog.Logger, recorder RateLimitRecorder) *RateLimiter {
	return &RateLimiter{
		cache: cache.New(5*time.Minute, 10*time.Minute),
		rules: map[string]RateLimitRule{
			"POST /api/users/login":                {Requests: 10, Window: time.Minute},
			"POST /api/users":                      {Requests: 20, Window: time.Minute},
			"DELETE /api/contacts/delete-range":    {Requests: 10, Window: time.Minute},
			"DELETE /api/to-do-items/delete-range": {Requests: 10, Window: time.Minute},
			"DELETE /api/users/delete-range":       {Requests: 10, Window: time.Minute},
		},
		fallback: RateLimitRule{Requests: 120, Window: time.Minute},
		logger:   logger,
		recorder: recorder,
	}
}

// SetRule overrides or adds the rule for a "METHOD /path" route template.
func (rl *RateLimiter) SetRule(route string, rule RateLimitRule) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.rules[route] = rule
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()

		if path == "" {
			path = c.Request.URL.Path
		}

		route := c.Request.Method + " " + path

		rl.mu.Lock()
		rule, ok := rl.rules[route]

		if !ok {
			rule = rl.fallback
		}

		key := fmt.Sprintf("%s|%s", route, c.ClientIP())
		allowed, remaining, resetTime := rl.take(key, rule)
		rl.mu.Unlock()

		c.Header("X-RateLimit-Limit", strconv.Itoa(rule.Requests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			if rl.recorder != nil {
				rl.recorder.RecordRateLimitHit(path)
			}

			rl.logger.Warn().
				Str("route", route).
				Str("client", c.ClientIP()).
				Int("limit", rule.Requests).
				Msg("rate limit exceeded")

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      "rate limit exceeded",
				"retryAfter": int(time.Until(resetTime).Seconds()),
			})

			return
		}

		c.Next()
	}
}

// take consumes one slot under rl.mu.
func (rl *RateLimiter) take(key string, rule RateLimitRule) (bool, int, time.Time) {
	now := time.Now()

	if raw, found := rl.cache.Get(key); found {
		entry := raw.(rateLimitEntry)

		if now.Before(entry.resetTime) {
			if entry.count >= rule.Requests {
				return false, 0, entry.resetTime
			}

			entry.count++
			rl.cache.Set(key, entry, cache.DefaultExpiration)

			return true, rule.Requests - entry.count, entry.resetTime
		}
	}

	resetTime := now.Add(rule.Window)
	rl.cache.Set(key, rateLimitEntry{count: 1, resetTime: resetTime}, rule.Window)

	return true, rule.Requests - 1, resetTime
}
