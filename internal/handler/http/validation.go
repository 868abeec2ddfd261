package http

import (
	"errors"
	"mime"
	"net/http"
	"strings"

	"text-api/internal/handler/http/respond"
)

// MaxPathLength is the longest request path accepted by InputValidation.
const MaxPathLength = 2048

// InputValidation returns middleware that rejects malformed requests before
// they reach a handler:
//   - paths longer than MaxPathLength get 414
//   - POST/PUT/PATCH bodies with a non-JSON Content-Type get 415
//
// A missing Content-Type is accepted and decoded as JSON.
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > MaxPathLength {
				respond.SafeError(w, http.StatusRequestURITooLong, errors.New("request URI too large"))
				return
			}

			if hasBody(r.Method) && !isJSONContentType(r.Header.Get("Content-Type")) {
				respond.SafeError(w, http.StatusUnsupportedMediaType, errors.New("unsupported content type: expected application/json"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func hasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// isJSONContentType accepts an empty value, application/json and any
// structured +json media type, with optional parameters such as charset.
func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
