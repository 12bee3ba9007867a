package contextx

import (
	"context"
	"fmt"
)

// maxTraceIDLen bounds client supplied trace ids, they end up in every log line.
const maxTraceIDLen = 64

type TraceID string

type contextKeyTraceID struct{}

func (t TraceID) String() string {
	return string(t)
}

// ParseTraceID accepts a non-empty id of at most 64 letters, digits, '-', '_'
// or '.'.
func ParseTraceID(s string) (TraceID, bool) {
	if s == "" || len(s) > maxTraceIDLen {
		return "", false
	}

	for _, c := range []byte(s) {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return "", false
		}
	}

	return TraceID(s), true
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	traceID, ok := ctx.Value(contextKeyTraceID{}).(TraceID)
	if !ok {
		return "", fmt.Errorf("trace id: %w", ErrNoValue)
	}

	return traceID, nil
}
