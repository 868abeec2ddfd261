package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	"text-api/internal/config"
	hhttp "text-api/internal/handler/http"
	"text-api/internal/handler/http/middleware"
	"text-api/internal/handler/http/requestid"
	htext "text-api/internal/handler/http/text"
	"text-api/internal/observability/logging"
	"text-api/internal/observability/tracing"
	textUC "text-api/internal/usecase/text"

	_ "text-api/docs" // swagger docs
)

// @title           Text API
// @version         1.0
// @description     Text utility service: word counting, character statistics
// @description     and Unicode uppercase conversion.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	logger := initLogger()
	cfg := loadConfig(logger)
	logger = reconfigureLogger(cfg)

	shutdownTracing := initTracing(logger, cfg)
	components := setupServer(logger, cfg)

	if err := runServer(logger, cfg, components, shutdownTracing); err != nil {
		logger.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

// initLogger builds the bootstrap logger from LOG_LEVEL/LOG_FORMAT so that
// configuration warnings are structured too.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

func loadConfig(logger *slog.Logger) config.Config {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	return cfg
}

// reconfigureLogger applies log settings that may have come from CONFIG_FILE.
func reconfigureLogger(cfg config.Config) *slog.Logger {
	logger := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	}).With(slog.String("version", cfg.Version))
	slog.SetDefault(logger)
	return logger
}

// initTracing installs the global tracer provider. Spans are exported only
// when an OTLP endpoint is configured; otherwise they exist for trace ID
// correlation in logs and responses.
func initTracing(logger *slog.Logger, cfg config.Config) func(context.Context) error {
	tc := tracing.Config{SampleRatio: cfg.Tracing.SampleRatio}
	if cfg.Tracing.OTLPEndpoint != "" {
		exp, err := tracing.NewOTLPExporter(context.Background(), cfg.Tracing.OTLPEndpoint)
		if err != nil {
			logger.Error("failed to create trace exporter", slog.Any("error", err))
			os.Exit(1)
		}
		tc.Exporter = exp
		logger.Info("trace export enabled", slog.String("endpoint", cfg.Tracing.OTLPEndpoint))
	}
	return tracing.Init(tc)
}

// ServerComponents holds what runServer needs beyond the handler.
type ServerComponents struct {
	Handler     http.Handler
	Ready       *hhttp.ReadyHandler
	RateLimiter *middleware.IPRateLimiter
}

func setupServer(logger *slog.Logger, cfg config.Config) *ServerComponents {
	ready := &hhttp.ReadyHandler{Version: cfg.Version}

	mux := setupRoutes(ready)
	rateLimiter := newRateLimiter(logger, cfg.RateLimit)
	handler := applyMiddleware(logger, cfg, mux, rateLimiter)

	return &ServerComponents{
		Handler:     handler,
		Ready:       ready,
		RateLimiter: rateLimiter,
	}
}

func setupRoutes(ready *hhttp.ReadyHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /health", &hhttp.HealthHandler{})
	mux.Handle("GET /ready", ready)
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	htext.Register(mux, textUC.NewService())
	return mux
}

func newRateLimiter(logger *slog.Logger, rl config.RateLimitConfig) *middleware.IPRateLimiter {
	if !rl.Enabled {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
		return nil
	}

	var extractor middleware.IPExtractor = middleware.RemoteAddrExtractor{}
	if len(rl.TrustedProxies) > 0 {
		trusted, err := middleware.NewTrustedProxyExtractor(rl.TrustedProxies)
		if err != nil {
			logger.Error("failed to parse trusted proxies", slog.Any("error", err))
			os.Exit(1)
		}
		extractor = trusted
		logger.Info("rate limiting: trusted proxy mode enabled",
			slog.Int("trusted_proxies_count", len(rl.TrustedProxies)))
	} else {
		logger.Info("rate limiting: using RemoteAddr (proxy headers ignored)")
	}

	limiter := middleware.NewIPRateLimiter(middleware.IPRateLimiterConfig{
		Enabled: true,
		RPS:     rl.RPS,
		Burst:   rl.Burst,
	}, extractor)

	logger.Info("rate limiting initialized",
		slog.Float64("rps", rl.RPS),
		slog.Int("burst", rl.Burst))
	return limiter
}

// applyMiddleware wraps the handler with the middleware chain.
// Order, outermost first: CORS → Request ID → IP Rate Limit → Tracing →
// Recovery → Logging → Input Validation → Timeout → Body Limit →
// Security Headers → Metrics.
func applyMiddleware(logger *slog.Logger, cfg config.Config, handler http.Handler, rateLimiter *middleware.IPRateLimiter) http.Handler {
	corsConfig := middleware.DefaultCORSConfig(cfg.CORS.AllowedOrigins)
	corsConfig.Logger = logger
	if len(corsConfig.AllowedOrigins) > 0 {
		logger.Info("CORS enabled",
			slog.Any("allowed_origins", corsConfig.AllowedOrigins),
			slog.Any("allowed_methods", corsConfig.AllowedMethods),
			slog.Int("max_age", corsConfig.MaxAge))
	}

	securityConfig := middleware.DefaultSecurityHeadersConfig()
	securityConfig.CSPEnabled = cfg.CSP.Enabled
	securityConfig.ReportOnly = cfg.CSP.ReportOnly
	if cfg.CSP.Enabled {
		logger.Info("CSP enabled", slog.Bool("report_only", cfg.CSP.ReportOnly))
	} else {
		logger.Warn("CSP is disabled")
	}

	chain := handler

	// Applied innermost to outermost.
	chain = hhttp.MetricsMiddleware(chain)
	chain = middleware.SecurityHeaders(securityConfig)(chain)
	chain = hhttp.LimitRequestBody(cfg.HTTP.MaxBodyBytes)(chain)
	chain = hhttp.Timeout(cfg.HTTP.RequestTimeout)(chain)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)

	if rateLimiter != nil {
		chain = rateLimiter.Middleware()(chain)
	}

	chain = requestid.Middleware(chain)
	chain = middleware.CORS(corsConfig)(chain)

	return chain
}

// runServer serves until SIGINT/SIGTERM or a listener failure, then drains
// in-flight requests within the shutdown budget.
func runServer(logger *slog.Logger, cfg config.Config, components *ServerComponents, shutdownTracing func(context.Context) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.HTTP.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.HTTP.Addr, err)
	}

	srv := &http.Server{
		Handler:           components.Handler,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting", slog.String("addr", ln.Addr().String()))
		components.Ready.MarkReady()
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	if components.RateLimiter != nil {
		g.Go(func() error {
			hhttp.StartRateLimitCleanup(gctx, components.RateLimiter, hhttp.DefaultCleanupInterval, hhttp.DefaultCleanupMaxIdle)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")
		components.Ready.MarkNotReady()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()

		var errs []error
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("server shutdown: %w", err))
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
		logger.Info("server stopped")
		return errors.Join(errs...)
	})

	return g.Wait()
}
