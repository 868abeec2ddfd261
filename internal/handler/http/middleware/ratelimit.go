package middleware

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"text-api/internal/handler/http/pathutil"
	"text-api/internal/handler/http/respond"
	"text-api/internal/observability/metrics"

	"golang.org/x/time/rate"
)

// IPRateLimiterConfig holds configuration for the IP-based rate limiter.
type IPRateLimiterConfig struct {
	// Enabled controls whether rate limiting is active.
	Enabled bool

	// RPS is the sustained request rate allowed per client address.
	RPS float64

	// Burst is the number of requests a client may make at once.
	Burst int
}

// DefaultIPRateLimiterConfig returns 20 req/s with bursts of 40.
func DefaultIPRateLimiterConfig() IPRateLimiterConfig {
	return IPRateLimiterConfig{
		Enabled: true,
		RPS:     20,
		Burst:   40,
	}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps one token bucket per client address.
type IPRateLimiter struct {
	config    IPRateLimiterConfig
	extractor IPExtractor
	now       func() time.Time

	mu       sync.Mutex
	visitors map[string]*visitor
}

// NewIPRateLimiter creates a limiter. A nil extractor keys by RemoteAddr.
func NewIPRateLimiter(config IPRateLimiterConfig, extractor IPExtractor) *IPRateLimiter {
	if config.RPS <= 0 {
		config.RPS = DefaultIPRateLimiterConfig().RPS
	}
	if config.Burst <= 0 {
		config.Burst = DefaultIPRateLimiterConfig().Burst
	}
	if extractor == nil {
		extractor = RemoteAddrExtractor{}
	}
	return &IPRateLimiter{
		config:    config,
		extractor: extractor,
		now:       time.Now,
		visitors:  make(map[string]*visitor),
	}
}

func (rl *IPRateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(rl.config.RPS), rl.config.Burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = rl.now()
	return v.limiter
}

// Allow consumes one token for ip and reports whether the request may proceed.
func (rl *IPRateLimiter) Allow(ip string) bool {
	return rl.limiterFor(ip).AllowN(rl.now(), 1)
}

// Cleanup forgets clients idle for longer than maxIdle and returns how many were removed.
func (rl *IPRateLimiter) Cleanup(maxIdle time.Duration) int {
	cutoff := rl.now().Add(-maxIdle)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for ip, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, ip)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked clients.
func (rl *IPRateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

// Middleware returns an HTTP middleware that enforces per-IP rate limiting.
// Rejected requests get 429 with a Retry-After header. A failure to derive
// the client address lets the request through.
func (rl *IPRateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !rl.config.Enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, err := rl.extractor.ExtractIP(r)
			if err != nil {
				slog.Error("IP rate limiter: failed to extract IP, allowing request",
					slog.String("error", err.Error()),
					slog.String("remote_addr", r.RemoteAddr),
					slog.String("path", r.URL.Path),
				)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.config.Burst))

			if !rl.Allow(ip) {
				retryAfter := int(math.Ceil(1 / rl.config.RPS))
				w.Header().Set("Retry-After", strconv.Itoa(max(retryAfter, 1)))

				path := pathutil.NormalizePath(r.URL.Path)
				metrics.RecordRateLimited(path)
				slog.Warn("rate limit exceeded",
					slog.String("ip", ip),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				respond.SafeError(w, http.StatusTooManyRequests, errors.New("rate limit exceeded"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
