package text

import (
	"net/http"

	textUC "text-api/internal/usecase/text"
)

// Register registers the text analysis endpoints with the given mux.
// Other methods on these paths get 405 from the mux.
func Register(mux *http.ServeMux, svc *textUC.Service) {
	mux.Handle("POST /process", ProcessHandler{svc})
	mux.Handle("POST /stats", StatsHandler{svc})
	mux.Handle("POST /uppercase", UppercaseHandler{svc})
}
