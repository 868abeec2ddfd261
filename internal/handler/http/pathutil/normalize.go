// Package pathutil maps request paths to a bounded set of route labels for
// metrics and span names.
package pathutil

import (
	"regexp"
	"strings"
)

// UnmatchedPath is the label used for any path the service does not route.
const UnmatchedPath = "/unmatched"

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// knownRoutes are the static paths registered on the mux.
var knownRoutes = map[string]struct{}{
	"/":          {},
	"/health":    {},
	"/ready":     {},
	"/live":      {},
	"/metrics":   {},
	"/process":   {},
	"/stats":     {},
	"/uppercase": {},
}

// pathPatterns collapse route families with arbitrary suffixes.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/swagger(/.*)?$`), Template: "/swagger/*"},
}

// NormalizePath returns a low-cardinality label for path. Query strings and a
// trailing slash are stripped, swagger assets collapse into one label and any
// path outside the route table becomes UnmatchedPath, so scanners probing
// random URLs cannot grow the label set.
//
//	NormalizePath("/stats")                   // "/stats"
//	NormalizePath("/uppercase/")              // "/uppercase"
//	NormalizePath("/process?debug=1")         // "/process"
//	NormalizePath("/swagger/index.html")      // "/swagger/*"
//	NormalizePath("/wp-admin/setup.php")      // "/unmatched"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if path == "" {
		path = "/"
	}

	if _, ok := knownRoutes[path]; ok {
		return path
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return UnmatchedPath
}

// GetExpectedCardinality returns the upper bound on distinct labels
// NormalizePath can produce.
func GetExpectedCardinality() int {
	return len(knownRoutes) + len(pathPatterns) + 1
}
