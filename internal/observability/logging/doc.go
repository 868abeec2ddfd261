// Package logging builds the service's slog loggers and carries a
// request-scoped logger through context.
//
// cmd/api creates the process logger with New, taking level and format from
// LOG_LEVEL and LOG_FORMAT ("json" by default, "text" for local runs). The
// HTTP Logging middleware then derives a per-request logger tagged with
// request_id via WithRequestID and stores it with WithLogger, so handlers
// reached further down the chain pick it up with FromContext:
//
//	func (h StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
//	    logging.FromContext(r.Context()).Debug("rejected text request",
//	        slog.String("reason", "missing"))
//	}
//
// FromContext falls back to slog.Default, which cmd/api replaces at startup,
// so code running outside a request still logs in the configured format.
package logging
