package cors

import (
	"net/http"

	"github.com/gorilla/mux"
)

// AnyOrigin allows requests from every origin.
const AnyOrigin = "*"

// New returns middleware that allows cross-origin reads from the given
// origins. Preflight requests are answered without reaching the handler.
func New(origins []string) mux.MiddlewareFunc {
	allowed := make(map[string]bool, len(origins))
	for _, origin := range origins {
		allowed[origin] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			origin := r.Header.Get("Origin")
			switch {
			case allowed[AnyOrigin]:
				h.Set("Access-Control-Allow-Origin", AnyOrigin)
			case origin != "" && allowed[origin]:
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
			}
			h.Set("Access-Control-Allow-Headers", "*")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
