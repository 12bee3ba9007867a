package middlewarex

import (
	"net/http"

	"github.com/rs/xid"

	"cancer_api/pkg/contextx"
)

const headerNameTraceID = "X-Trace-Id"

// TraceID reuses a well formed X-Trace-Id from the client or issues an xid,
// and echoes it in the response.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, ok := contextx.ParseTraceID(r.Header.Get(headerNameTraceID))
		if !ok {
			traceID = contextx.TraceID(xid.New().String())
		}

		ctx := contextx.WithTraceID(r.Context(), traceID)

		w.Header().Set(headerNameTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
