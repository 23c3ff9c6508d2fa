package middleware

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"qa-banking-sandbox/pkg/apperror"
	"qa-banking-sandbox/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the per-endpoint-group limits.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"transfers": {Limit: 60, Window: time.Minute},
		"topups":    {Limit: 30, Window: time.Minute},
		"requests":  {Limit: 20, Window: time.Minute},
		"reads":     {Limit: 300, Window: time.Minute},
	}
}

// RateLimitResult reports the state of a counter after Allow.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix seconds when the window resets
}

// RateLimitStore is an in-process fixed-window counter. Windows are keyed by
// caller identifier + endpoint group and expire lazily.
type RateLimitStore struct {
	mu      sync.Mutex
	windows map[string]*rateWindow
}

type rateWindow struct {
	count   int64
	resetAt time.Time
}

// NewRateLimitStore creates an empty store.
func NewRateLimitStore() *RateLimitStore {
	return &RateLimitStore{windows: make(map[string]*rateWindow)}
}

// Allow increments the counter for key and reports whether the request fits
// within limit for the current window.
func (s *RateLimitStore) Allow(key string, limit int64, window time.Duration) RateLimitResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	w, ok := s.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &rateWindow{resetAt: now.Add(window)}
		s.windows[key] = w
	}
	w.count++

	remaining := limit - w.count
	if remaining < 0 {
		remaining = 0
	}
	return RateLimitResult{
		Allowed:   w.count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   w.resetAt.Unix(),
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
func RateLimiter(store *RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", c.ClientIP(), group)
		result := store.Allow(key, rule.Limit, rule.Window)

		// Always set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			log.Warn().Str("group", group).Str("key", key).Msg("rate limit exceeded")
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}
