// Package config provides environment lookup helpers shared by the service
// configuration loaders.
//
// Every typed getter returns its default when the variable is unset or empty.
// A value that is present but unparseable is logged at warn level and the
// default is used instead, so a typo never prevents startup on its own.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// LookupEnv reports the trimmed value of key and whether it carried anything.
func LookupEnv(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

// GetEnvString returns the value of key or defaultValue if unset.
//
// Example:
//
//	addr := GetEnvString("HTTP_ADDR", ":8080")
func GetEnvString(key, defaultValue string) string {
	if v, ok := LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// GetEnvInt returns key parsed as a base-10 int.
func GetEnvInt(key string, defaultValue int) int {
	v, ok := LookupEnv(key)
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		warnInvalid(key, v, "integer", strconv.Itoa(defaultValue), err)
		return defaultValue
	}
	return n
}

// GetEnvInt64 returns key parsed as a base-10 int64.
//
// Example:
//
//	limit := GetEnvInt64("HTTP_MAX_BODY_BYTES", 1<<20)
func GetEnvInt64(key string, defaultValue int64) int64 {
	v, ok := LookupEnv(key)
	if !ok {
		return defaultValue
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		warnInvalid(key, v, "integer", strconv.FormatInt(defaultValue, 10), err)
		return defaultValue
	}
	return n
}

// GetEnvFloat returns key parsed as a float64.
func GetEnvFloat(key string, defaultValue float64) float64 {
	v, ok := LookupEnv(key)
	if !ok {
		return defaultValue
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		warnInvalid(key, v, "float", strconv.FormatFloat(defaultValue, 'g', -1, 64), err)
		return defaultValue
	}
	return f
}

// GetEnvBool returns key parsed by strconv.ParseBool
// ("1", "t", "true", "0", "f", "false" and their case variants).
//
// Example:
//
//	enabled := GetEnvBool("RATELIMIT_ENABLED", true)
func GetEnvBool(key string, defaultValue bool) bool {
	v, ok := LookupEnv(key)
	if !ok {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		warnInvalid(key, v, "boolean", strconv.FormatBool(defaultValue), err)
		return defaultValue
	}
	return b
}

// GetEnvDuration returns key parsed by time.ParseDuration ("500ms", "15s", "1m30s").
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v, ok := LookupEnv(key)
	if !ok {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		warnInvalid(key, v, "duration", defaultValue.String(), err)
		return defaultValue
	}
	return d
}

// GetEnvStringList splits key on commas, trimming each element and dropping
// empty ones. A value made only of separators yields defaultValue.
//
// Example:
//
//	// CORS_ALLOWED_ORIGINS="https://a.example, https://b.example"
//	origins := GetEnvStringList("CORS_ALLOWED_ORIGINS", nil)
func GetEnvStringList(key string, defaultValue []string) []string {
	v, ok := LookupEnv(key)
	if !ok {
		return defaultValue
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func warnInvalid(key, value, kind, def string, err error) {
	slog.Warn("invalid "+kind+" value for environment variable, using default",
		slog.String("key", key),
		slog.String("value", value),
		slog.String("default", def),
		slog.String("error", err.Error()))
}
