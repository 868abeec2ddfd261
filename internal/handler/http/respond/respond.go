// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes error handling with sanitization to prevent leaking internal details.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"text-api/internal/domain/entity"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error" example:"validation error on field 'text': must not be empty"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent, so the failure can only be logged.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and error message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, ErrorResponse{Error: err.Error()})
}

// safeFragments mark messages that describe a client mistake and can be returned verbatim.
var safeFragments = []string{
	"required",
	"invalid",
	"must not",
	"must be",
	"cannot be",
	"empty",
	"too large",
	"unsupported",
	"rate limit",
	"timeout",
}

// isSafe reports whether err's message can be shown to the client.
// Validation errors are always safe; 5xx errors never are.
func isSafe(code int, err error) bool {
	if code >= 500 {
		return false
	}
	if entity.IsValidationError(err) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, frag := range safeFragments {
		if strings.Contains(msg, frag) {
			return true
		}
	}
	return false
}

// SafeError sanitizes error messages before returning them to users.
// Client errors (validation, malformed input) are returned as-is; anything else
// is returned as "internal server error" with the details logged.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	if isSafe(code, err) {
		JSON(w, code, ErrorResponse{Error: err.Error()})
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, ErrorResponse{Error: "internal server error"})
}

// AppError is an error type that carries a user-facing message.
type AppError struct {
	UserMsg string // Message to display to users
	Err     error  // Internal error (logged for debugging)
	Code    int    // HTTP status code
}

// Error returns the error message, implementing the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

// Unwrap returns the underlying error, implementing the errors.Unwrap interface.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given parameters.
func NewAppError(code int, userMsg string, err error) *AppError {
	return &AppError{Code: code, UserMsg: userMsg, Err: err}
}

// SafeAppError handles errors with AppError support.
// If the error is an AppError, its status and user message are used and the
// internal error is logged (debug for client errors, error for 5xx).
// Otherwise it falls back to SafeError with code.
func SafeAppError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			level := slog.LevelDebug
			if appErr.Code >= 500 {
				level = slog.LevelError
			}
			slog.Default().Log(context.Background(), level, "application error",
				slog.String("status", http.StatusText(appErr.Code)),
				slog.Int("code", appErr.Code),
				slog.String("user_message", appErr.UserMsg),
				slog.String("error", SanitizeError(appErr.Err)))
		}
		JSON(w, appErr.Code, ErrorResponse{Error: appErr.UserMsg})
		return
	}

	SafeError(w, code, err)
}
