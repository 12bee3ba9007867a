package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"cancer_api/pkg/logx"
	"cancer_api/pkg/middlewarex"
)

type RouterOptions struct {
	CORSAllowedOrigins  []string
	SensitiveDataMasker logx.SensitiveDataMaskerInterface
	LogFieldMaxLen      int
	// Metrics may be nil.
	Metrics *middlewarex.HTTPMetrics
}

// NewRouter wraps the routes of s in the middleware chain.
func NewRouter(s Server, opts RouterOptions) http.Handler {
	masker := opts.SensitiveDataMasker
	if masker == nil {
		masker = logx.NewNopSensitiveDataMasker()
	}

	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.CORS(opts.CORSAllowedOrigins),
	)

	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	r.Use(
		middlewarex.RequestLogging(masker, opts.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, opts.LogFieldMaxLen),
	)

	s.RegisterRoutes(r)

	return r
}
