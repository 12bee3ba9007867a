package contextx_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"cancer_api/pkg/contextx"
)

func TestTraceIDFromContext(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	traceID, err := contextx.TraceIDFromContext(ctx)
	rq.Empty(traceID)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "trace id: no value in context")

	ctx = contextx.WithTraceID(ctx, "cq1l5s2v4kbs73b0c8fg")

	traceID, err = contextx.TraceIDFromContext(ctx)
	rq.NoError(err)
	rq.Equal(contextx.TraceID("cq1l5s2v4kbs73b0c8fg"), traceID)
}

func TestParseTraceID(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "xid", input: "cq1l5s2v4kbs73b0c8fg", ok: true},
		{name: "uuid", input: "0b7c1c2e-5d7f-4a47-9f65-1f4b0c9d6a11", ok: true},
		{name: "Dotted", input: "web.checkout_42", ok: true},
		{name: "Empty", input: ""},
		{name: "Too long", input: strings.Repeat("a", 65)},
		{name: "Newline injection", input: "abc\nlevel=ERROR"},
		{name: "Spaces", input: "a b"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			traceID, ok := contextx.ParseTraceID(tc.input)
			rq.Equal(tc.ok, ok)

			if tc.ok {
				rq.Equal(tc.input, traceID.String())
			}
		})
	}
}
