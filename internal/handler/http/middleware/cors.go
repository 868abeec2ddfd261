// Package middleware holds the request-filtering middleware applied in front
// of the text endpoints: CORS, security headers and per-IP rate limiting.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is the exact-match whitelist. "*" allows any origin.
	AllowedOrigins []string

	// AllowedMethods are advertised in preflight responses.
	AllowedMethods []string

	// AllowedHeaders are advertised in preflight responses.
	AllowedHeaders []string

	// MaxAge is how long, in seconds, browsers may cache a preflight result.
	MaxAge int

	// Logger receives rejected-origin warnings. Nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultCORSConfig returns a config for the given origins with the methods
// and headers the text endpoints need.
func DefaultCORSConfig(origins []string) CORSConfig {
	return CORSConfig{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID", "traceparent", "tracestate"},
		MaxAge:         86400,
	}
}

// ValidateOrigins checks that every origin is a bare http(s) scheme://host[:port].
func ValidateOrigins(origins []string) error {
	for _, origin := range origins {
		if origin == "*" {
			continue
		}
		u, err := url.Parse(origin)
		if err != nil {
			return fmt.Errorf("invalid origin URL '%s': %w", origin, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("origin must use http or https scheme: %s", origin)
		}
		if u.Host == "" {
			return fmt.Errorf("origin must include a host: %s", origin)
		}
		if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
			return fmt.Errorf("origin must not include path, query or fragment: %s", origin)
		}
	}
	return nil
}

// CORS returns middleware that answers cross-origin requests from whitelisted
// origins. Requests without an Origin header pass through untouched. Disallowed
// origins are served without CORS headers so the browser blocks the response.
// Preflight requests from allowed origins are answered with 204 here.
// With no origins configured the middleware is a no-op.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	allowAll := false
	allowed := make(map[string]struct{}, len(config.AllowedOrigins))
	for _, o := range config.AllowedOrigins {
		if o == "*" {
			allowAll = true
			continue
		}
		allowed[o] = struct{}{}
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	methods := strings.Join(config.AllowedMethods, ", ")
	headers := strings.Join(config.AllowedHeaders, ", ")
	maxAge := strconv.Itoa(config.MaxAge)

	return func(next http.Handler) http.Handler {
		if len(config.AllowedOrigins) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Origin")

			if _, ok := allowed[origin]; !ok && !allowAll {
				logger.Warn("CORS: origin not allowed",
					slog.String("origin", origin),
					slog.String("path", r.URL.Path),
					slog.String("method", r.Method),
				)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Expose-Headers", "X-Request-ID, X-Trace-Id")

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
