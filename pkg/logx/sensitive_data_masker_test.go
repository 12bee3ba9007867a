package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cancer_api/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker("password", "radius_mean")

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "String field",
			input:  []byte(`{"hello":"world","password":"abc123"}`),
			output: []byte(`{"hello":"world","password":"[MASKED]"}`),
		},
		{
			name:   "Numeric field",
			input:  []byte(`{"radius_mean": 21.5,"texture_mean":20}`),
			output: []byte(`{"radius_mean": [MASKED],"texture_mean":20}`),
		},
		{
			name:   "Authorization header",
			input:  []byte("POST / HTTP/1.1\r\nAuthorization: Bearer abc\r\n"),
			output: []byte("POST / HTTP/1.1\r\nAuthorization: [MASKED]\r\n"),
		},
		{
			name:   "Unconfigured field",
			input:  []byte(`{"email":"john@doe.com"}`),
			output: []byte(`{"email":"john@doe.com"}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}

func TestNopSensitiveDataMasker(t *testing.T) {
	rq := require.New(t)

	input := []byte(`{"password":"abc123"}`)

	rq.Equal(input, logx.NewNopSensitiveDataMasker().Mask(input))
}

func TestParseLevel(t *testing.T) {
	rq := require.New(t)

	rq.Equal("DEBUG", logx.ParseLevel("debug").String())
	rq.Equal("WARN", logx.ParseLevel(" Warning ").String())
	rq.Equal("ERROR", logx.ParseLevel("ERROR").String())
	rq.Equal("INFO", logx.ParseLevel("verbose").String())
}
