package middlewarex_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"cancer_api/pkg/contextx"
	"cancer_api/pkg/middlewarex"
)

func TestTraceID(t *testing.T) {
	rq := require.New(t)

	var seen contextx.TraceID

	handler := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		traceID, err := contextx.TraceIDFromContext(r.Context())
		rq.NoError(err)

		seen = traceID
	}))

	t.Run("Generated", func(*testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

		rq.NotEmpty(seen)
		rq.Equal(seen.String(), rec.Header().Get("X-Trace-Id"))
	})

	t.Run("Propagated", func(*testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.Header.Set("X-Trace-Id", "trace-1")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		rq.Equal(contextx.TraceID("trace-1"), seen)
		rq.Equal("trace-1", rec.Header().Get("X-Trace-Id"))
	})

	t.Run("Malformed header replaced", func(*testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.Header.Set("X-Trace-Id", "bad id\twith spaces")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		rq.NotEqual(contextx.TraceID("bad id\twith spaces"), seen)
		rq.Len(seen.String(), 20)
		rq.Equal(seen.String(), rec.Header().Get("X-Trace-Id"))
	})
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	handler := middlewarex.TraceID(middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("X-Trace-Id", "trace-2")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	rq.Equal(http.StatusInternalServerError, rec.Code)
	rq.JSONEq(
		`{"code":"InternalServerError","message":"Internal server error","supportId":"trace-2"}`,
		rec.Body.String(),
	)
}

func TestCORS(t *testing.T) {
	rq := require.New(t)

	handler := middlewarex.CORS([]string{"https://allowed.example"})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	testCases := []struct {
		name   string
		method string
		origin string
		allow  string
	}{
		{
			name:   "Allowed origin",
			method: http.MethodPost,
			origin: "https://allowed.example",
			allow:  "https://allowed.example",
		},
		{
			name:   "Foreign origin",
			method: http.MethodPost,
			origin: "https://evil.example",
		},
		{
			name:   "Allowed preflight",
			method: http.MethodOptions,
			origin: "https://allowed.example",
			allow:  "https://allowed.example",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			req := httptest.NewRequest(tc.method, "/api/cancer/predict", http.NoBody)
			req.Header.Set("Origin", tc.origin)

			if tc.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			rq.Equal(tc.allow, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORSEmptyAllowList(t *testing.T) {
	rq := require.New(t)

	handler := middlewarex.CORS(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/cancer/predict", http.NoBody)
	req.Header.Set("Origin", "https://anyone.example")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	rq.Empty(rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTPMetrics(t *testing.T) {
	rq := require.New(t)

	reg := prometheus.NewRegistry()
	m := middlewarex.NewHTTPMetrics(reg, "test")

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, path := range []string{"/items/1", "/items/2", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, http.NoBody))
	}

	expected := `
# HELP test_http_requests_total Total number of HTTP requests
# TYPE test_http_requests_total counter
test_http_requests_total{method="GET",route="/items/{id}",status="418"} 2
test_http_requests_total{method="GET",route="unmatched",status="404"} 1
`

	rq.NoError(testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_http_requests_total"))
}
