package middleware

import (
	"net/http"
	"strings"
)

// CSPPolicy is an ordered list of Content-Security-Policy directives.
type CSPPolicy []CSPDirective

// CSPDirective is a single directive such as "default-src 'self'".
type CSPDirective struct {
	Name    string
	Sources []string
}

// String renders the policy as a header value.
func (p CSPPolicy) String() string {
	parts := make([]string, 0, len(p))
	for _, d := range p {
		if len(d.Sources) == 0 {
			parts = append(parts, d.Name)
			continue
		}
		parts = append(parts, d.Name+" "+strings.Join(d.Sources, " "))
	}
	return strings.Join(parts, "; ")
}

// APIPolicy forbids every fetch; JSON responses never load subresources.
func APIPolicy() CSPPolicy {
	return CSPPolicy{
		{Name: "default-src", Sources: []string{"'none'"}},
		{Name: "frame-ancestors", Sources: []string{"'none'"}},
		{Name: "base-uri", Sources: []string{"'none'"}},
		{Name: "form-action", Sources: []string{"'none'"}},
	}
}

// SwaggerUIPolicy allows the inline bootstrap script and styles Swagger UI ships with.
func SwaggerUIPolicy() CSPPolicy {
	return CSPPolicy{
		{Name: "default-src", Sources: []string{"'self'"}},
		{Name: "script-src", Sources: []string{"'self'", "'unsafe-inline'"}},
		{Name: "style-src", Sources: []string{"'self'", "'unsafe-inline'"}},
		{Name: "img-src", Sources: []string{"'self'", "data:"}},
		{Name: "font-src", Sources: []string{"'self'", "data:"}},
		{Name: "connect-src", Sources: []string{"'self'"}},
		{Name: "frame-ancestors", Sources: []string{"'none'"}},
		{Name: "object-src", Sources: []string{"'none'"}},
	}
}

// SecurityHeadersConfig controls SecurityHeaders.
type SecurityHeadersConfig struct {
	// CSPEnabled adds a Content-Security-Policy header.
	CSPEnabled bool

	// ReportOnly sends Content-Security-Policy-Report-Only instead.
	ReportOnly bool

	// DefaultPolicy applies when no PathPolicies prefix matches.
	DefaultPolicy CSPPolicy

	// PathPolicies maps path prefixes to policies; the longest prefix wins.
	PathPolicies map[string]CSPPolicy
}

// DefaultSecurityHeadersConfig returns the API policy with a relaxed policy for /swagger/.
func DefaultSecurityHeadersConfig() SecurityHeadersConfig {
	return SecurityHeadersConfig{
		CSPEnabled:    true,
		DefaultPolicy: APIPolicy(),
		PathPolicies: map[string]CSPPolicy{
			"/swagger/": SwaggerUIPolicy(),
		},
	}
}

// SecurityHeaders returns middleware that sets nosniff, frame and referrer
// headers on every response and, when enabled, a path-selected CSP header.
// Policies are rendered once when the middleware is built.
func SecurityHeaders(config SecurityHeadersConfig) func(http.Handler) http.Handler {
	headerName := "Content-Security-Policy"
	if config.ReportOnly {
		headerName = "Content-Security-Policy-Report-Only"
	}

	defaultValue := config.DefaultPolicy.String()
	pathValues := make(map[string]string, len(config.PathPolicies))
	for prefix, policy := range config.PathPolicies {
		pathValues[prefix] = policy.String()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "no-referrer")

			if config.CSPEnabled {
				if value := selectPolicy(r.URL.Path, defaultValue, pathValues); value != "" {
					h.Set(headerName, value)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func selectPolicy(path, fallback string, byPrefix map[string]string) string {
	longest := ""
	value := fallback
	for prefix, v := range byPrefix {
		if strings.HasPrefix(path, prefix) && len(prefix) > len(longest) {
			longest = prefix
			value = v
		}
	}
	return value
}
