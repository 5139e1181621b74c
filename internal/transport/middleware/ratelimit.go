package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// clientIdleTTL is how long a client's limiter survives without traffic.
const clientIdleTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per client host.
type RateLimiter struct {
	clients sync.Map // map[string]*clientLimiter
	stop    chan struct{}
	once    sync.Once
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// NewRateLimiter starts the idle-client sweeper. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the sweeper. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows maxPerMinute requests per client with a full-minute burst and
// answers the rest with 429.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	every := rate.Every(time.Minute / time.Duration(maxPerMinute))
	retryAfter := strconv.Itoa(int(math.Ceil(60 / float64(maxPerMinute))))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.client(clientKey(r), every, maxPerMinute).Allow() {
				w.Header().Set("Retry-After", retryAfter)
				writeJSONError(w, http.StatusTooManyRequests, "rate_limited", "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientKey buckets by host so a client reconnecting from a new source port
// keeps its budget.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) client(key string, every rate.Limit, burst int) *rate.Limiter {
	val, ok := rl.clients.Load(key)
	if !ok {
		val, _ = rl.clients.LoadOrStore(key, &clientLimiter{limiter: rate.NewLimiter(every, burst)})
	}
	c := val.(*clientLimiter)
	c.lastSeen.Store(time.Now().UnixNano())
	return c.limiter
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.sweep(now)
		}
	}
}

// sweep forgets clients idle for longer than clientIdleTTL.
func (rl *RateLimiter) sweep(now time.Time) {
	cutoff := now.Add(-clientIdleTTL).UnixNano()
	rl.clients.Range(func(key, value any) bool {
		if value.(*clientLimiter).lastSeen.Load() < cutoff {
			rl.clients.Delete(key)
		}
		return true
	})
}
