package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/boxcalc-service/internal/domain/dto"
	"github.com/guttosm/boxcalc-service/internal/i18n"
)

const defaultRateLimitShards = 16

// clientWindow counts the requests of one client inside the current fixed window.
type clientWindow struct {
	used    int
	resetAt time.Time
}

type limiterShard struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
}

// RateLimiter is a fixed-window request limiter keyed by client IP.
// Clients are spread over shards so concurrent quotes do not contend on one lock.
type RateLimiter struct {
	shards   []*limiterShard
	limit    int
	window   time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// RateLimiterOption configures a RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithShards sets the number of shards. Non-positive values keep the default.
func WithShards(n int) RateLimiterOption {
	return func(rl *RateLimiter) {
		if n > 0 {
			rl.shards = newLimiterShards(n)
		}
	}
}

// WithRateLimitClock replaces time.Now, for tests.
func WithRateLimitClock(now func() time.Time) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.now = now
	}
}

// NewRateLimiter allows limit requests per client in every window.
// It starts a sweeper goroutine; call Stop to release it.
func NewRateLimiter(limit int, window time.Duration, opts ...RateLimiterOption) *RateLimiter {
	rl := &RateLimiter{
		shards: newLimiterShards(defaultRateLimitShards),
		limit:  limit,
		window: window,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(rl)
	}

	go rl.sweep()
	return rl
}

func newLimiterShards(n int) []*limiterShard {
	shards := make([]*limiterShard, n)
	for i := range shards {
		shards[i] = &limiterShard{clients: make(map[string]*clientWindow)}
	}
	return shards
}

func (rl *RateLimiter) shardFor(key string) *limiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// Allow records one request for key and reports whether it fits the window,
// how many requests remain and when the window resets.
func (rl *RateLimiter) Allow(key string) (allowed bool, remaining int, resetAt time.Time) {
	shard := rl.shardFor(key)
	now := rl.now()

	shard.mu.Lock()
	defer shard.mu.Unlock()

	w, ok := shard.clients[key]
	if !ok || !now.Before(w.resetAt) {
		w = &clientWindow{resetAt: now.Add(rl.window)}
		shard.clients[key] = w
	}
	if w.used >= rl.limit {
		return false, 0, w.resetAt
	}
	w.used++
	return true, rl.limit - w.used, w.resetAt
}

// Middleware rejects requests over the limit with 429 and a translated error.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, resetAt := rl.Allow("ip:" + c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if !allowed {
			wait := int(math.Ceil(resetAt.Sub(rl.now()).Seconds()))
			if wait < 1 {
				wait = 1
			}
			c.Header("Retry-After", strconv.Itoa(wait))
			msg := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewError(dto.ErrCodeRateLimit, msg).WithRequestID(GetRequestID(c)))
			return
		}

		c.Next()
	}
}

// Len returns the number of clients currently tracked.
func (rl *RateLimiter) Len() int {
	n := 0
	for _, shard := range rl.shards {
		shard.mu.Lock()
		n += len(shard.clients)
		shard.mu.Unlock()
	}
	return n
}

func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.dropExpired()
		case <-rl.stopCh:
			return
		}
	}
}

// dropExpired forgets clients whose window has ended.
func (rl *RateLimiter) dropExpired() {
	now := rl.now()
	for _, shard := range rl.shards {
		shard.mu.Lock()
		for key, w := range shard.clients {
			if !now.Before(w.resetAt) {
				delete(shard.clients, key)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop ends the sweeper. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}
