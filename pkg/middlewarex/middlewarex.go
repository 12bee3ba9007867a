// Package middlewarex holds the HTTP middleware shared by every server of the
// application. The expected order is TraceID, Logger, Recovery and then the rest.
package middlewarex

import "cancer_api/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const truncatedSuffix = "...[truncated]"

// truncate cuts dump to at most maxLen bytes plus a marker. A non-positive
// maxLen disables the limit.
func truncate(dump []byte, maxLen int) []byte {
	if maxLen <= 0 || len(dump) <= maxLen {
		return dump
	}

	out := make([]byte, 0, maxLen+len(truncatedSuffix))
	out = append(out, dump[:maxLen]...)

	return append(out, truncatedSuffix...)
}
