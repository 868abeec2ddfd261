// Package config assembles the service configuration.
//
// Values are resolved in three layers: built-in defaults, an optional YAML
// file named by CONFIG_FILE, and environment variables. Later layers win.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"text-api/internal/handler/http/middleware"
	pkgconfig "text-api/pkg/config"
)

// EnvConfigFile names the environment variable holding the YAML file path.
const EnvConfigFile = "CONFIG_FILE"

// Config is the complete runtime configuration.
type Config struct {
	Version   string          `yaml:"version"`
	HTTP      HTTPConfig      `yaml:"http"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	CORS      CORSConfig      `yaml:"cors"`
	CSP       CSPConfig       `yaml:"csp"`
	Log       LogConfig       `yaml:"log"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

// HTTPConfig controls the listener and per-request limits.
type HTTPConfig struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
}

// RateLimitConfig controls the per-IP token bucket.
type RateLimitConfig struct {
	Enabled        bool     `yaml:"enabled"`
	RPS            float64  `yaml:"rps"`
	Burst          int      `yaml:"burst"`
	TrustedProxies []string `yaml:"trusted_proxies"`
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// CSPConfig toggles the Content-Security-Policy header.
type CSPConfig struct {
	Enabled    bool `yaml:"enabled"`
	ReportOnly bool `yaml:"report_only"`
}

// LogConfig selects logger level and output format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// TracingConfig controls the tracer provider.
type TracingConfig struct {
	SampleRatio float64 `yaml:"sample_ratio"`
	// OTLPEndpoint is an OTLP/HTTP collector URL. Empty disables export.
	OTLPEndpoint string `yaml:"otlp_endpoint"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Version: "dev",
		HTTP: HTTPConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 10 * time.Second,
			RequestTimeout:    15 * time.Second,
			ShutdownTimeout:   5 * time.Second,
			MaxBodyBytes:      1 << 20,
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     20,
			Burst:   40,
		},
		CSP: CSPConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Tracing: TracingConfig{
			SampleRatio: 1.0,
		},
	}
}

// Load resolves defaults, the CONFIG_FILE YAML file (if set) and the
// environment, then validates the result.
func Load() (Config, error) {
	cfg := Default()

	if path := pkgconfig.GetEnvString(EnvConfigFile, ""); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// loadFile overlays the YAML document at path onto cfg. Keys absent from
// the file keep their current values.
func loadFile(path string, cfg *Config) error {
	// #nosec G304 -- path comes from the operator-controlled CONFIG_FILE variable
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Version = pkgconfig.GetEnvString("VERSION", cfg.Version)

	cfg.HTTP.Addr = pkgconfig.GetEnvString("HTTP_ADDR", cfg.HTTP.Addr)
	cfg.HTTP.ReadHeaderTimeout = pkgconfig.GetEnvDuration("HTTP_READ_HEADER_TIMEOUT", cfg.HTTP.ReadHeaderTimeout)
	cfg.HTTP.RequestTimeout = pkgconfig.GetEnvDuration("HTTP_REQUEST_TIMEOUT", cfg.HTTP.RequestTimeout)
	cfg.HTTP.ShutdownTimeout = pkgconfig.GetEnvDuration("HTTP_SHUTDOWN_TIMEOUT", cfg.HTTP.ShutdownTimeout)
	cfg.HTTP.MaxBodyBytes = pkgconfig.GetEnvInt64("HTTP_MAX_BODY_BYTES", cfg.HTTP.MaxBodyBytes)

	cfg.RateLimit.Enabled = pkgconfig.GetEnvBool("RATELIMIT_ENABLED", cfg.RateLimit.Enabled)
	cfg.RateLimit.RPS = pkgconfig.GetEnvFloat("RATELIMIT_RPS", cfg.RateLimit.RPS)
	cfg.RateLimit.Burst = pkgconfig.GetEnvInt("RATELIMIT_BURST", cfg.RateLimit.Burst)
	cfg.RateLimit.TrustedProxies = pkgconfig.GetEnvStringList("RATELIMIT_TRUSTED_PROXIES", cfg.RateLimit.TrustedProxies)

	cfg.CORS.AllowedOrigins = pkgconfig.GetEnvStringList("CORS_ALLOWED_ORIGINS", cfg.CORS.AllowedOrigins)

	cfg.CSP.Enabled = pkgconfig.GetEnvBool("CSP_ENABLED", cfg.CSP.Enabled)
	cfg.CSP.ReportOnly = pkgconfig.GetEnvBool("CSP_REPORT_ONLY", cfg.CSP.ReportOnly)

	cfg.Log.Level = pkgconfig.GetEnvString("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = pkgconfig.GetEnvString("LOG_FORMAT", cfg.Log.Format)

	cfg.Tracing.SampleRatio = pkgconfig.GetEnvFloat("TRACING_SAMPLE_RATIO", cfg.Tracing.SampleRatio)
	cfg.Tracing.OTLPEndpoint = pkgconfig.GetEnvString("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Tracing.OTLPEndpoint)
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	check := func(field string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}

	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http.addr: must not be empty"))
	}
	check("http.read_header_timeout", pkgconfig.ValidatePositiveDuration(c.HTTP.ReadHeaderTimeout))
	check("http.request_timeout", pkgconfig.ValidatePositiveDuration(c.HTTP.RequestTimeout))
	check("http.shutdown_timeout", pkgconfig.ValidatePositiveDuration(c.HTTP.ShutdownTimeout))
	check("http.max_body_bytes", pkgconfig.ValidateMinInt(c.HTTP.MaxBodyBytes, 1))

	if c.RateLimit.Enabled {
		check("ratelimit.rps", pkgconfig.ValidatePositiveFloat(c.RateLimit.RPS))
		check("ratelimit.burst", pkgconfig.ValidateMinInt(int64(c.RateLimit.Burst), 1))
	}
	_, err := middleware.ParseTrustedProxies(c.RateLimit.TrustedProxies)
	check("ratelimit.trusted_proxies", err)

	check("cors.allowed_origins", middleware.ValidateOrigins(c.CORS.AllowedOrigins))
	check("tracing.sample_ratio", pkgconfig.ValidateFloatRange(c.Tracing.SampleRatio, 0, 1))

	return errors.Join(errs...)
}
