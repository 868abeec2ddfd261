package respond

import (
	"regexp"
	"unicode/utf8"
)

// maxLoggedErrorLen caps sanitized messages so oversized payload fragments
// never flood the logs.
const maxLoggedErrorLen = 512

var (
	// Authorization header values
	bearerTokenPattern = regexp.MustCompile(`(?i)bearer\s+[a-z0-9\-._~+/]+=*`)
	// userinfo passwords inside URLs
	urlPasswordPattern = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)
)

// SanitizeError returns err's message with credentials masked and its length capped.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = bearerTokenPattern.ReplaceAllString(msg, "Bearer ****")
	msg = urlPasswordPattern.ReplaceAllString(msg, "://$1:****@")

	if utf8.RuneCountInString(msg) > maxLoggedErrorLen {
		msg = string([]rune(msg)[:maxLoggedErrorLen]) + "...(truncated)"
	}
	return msg
}
