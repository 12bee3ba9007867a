package middlewarex

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"strings"

	"cancer_api/pkg/logx"
)

// RequestLogging logs the masked request dump. Multipart bodies are left out.
func RequestLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			dumpBody := !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")

			attrs := []any{slog.Int64("content-length", r.ContentLength)}

			dump, err := httputil.DumpRequest(r, dumpBody)
			if err != nil {
				attrs = append(attrs, logx.Error(err))
			}

			attrs = append(attrs, slog.String(
				logx.FieldRequestBody,
				string(sensitiveDataMasker.Mask(truncate(dump, logFieldMaxLen))),
			))

			logger(ctx).Info(logx.FieldHTTPRequest, attrs...)

			next.ServeHTTP(w, r)
		})
	}
}
