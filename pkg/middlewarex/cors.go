package middlewarex

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
)

const corsMaxAge = 10 * time.Minute

// CORS reflects the Origin header only for the allowed origins. Preflight
// requests from other origins are answered without CORS headers. An empty
// list allows no origin.
func CORS(allowedOrigins []string) func(next http.Handler) http.Handler {
	var allowNone func(*http.Request, string) bool

	if len(allowedOrigins) == 0 {
		allowNone = func(*http.Request, string) bool { return false }
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowOriginFunc:  allowNone,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", headerNameTraceID},
		ExposedHeaders:   []string{headerNameTraceID},
		AllowCredentials: true,
		MaxAge:           int(corsMaxAge.Seconds()),
	})
}
