package req_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"cancer_api/pkg/apperr"
	"cancer_api/pkg/errcodes"
	"cancer_api/pkg/httpx/req"
)

type payload struct {
	Radius *float64 `json:"radius" validate:"required"`
}

func TestRead(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name        string
		body        string
		wantErr     bool
		description string
	}{
		{
			name: "Valid",
			body: `{"radius": 0}`,
		},
		{
			name:        "Broken JSON",
			body:        `{"radius":`,
			wantErr:     true,
			description: "Invalid JSON",
		},
		{
			name:    "Missing field",
			body:    `{}`,
			wantErr: true,
		},
		{
			name:        "Wrong type",
			body:        `{"radius": "big"}`,
			wantErr:     true,
			description: "Invalid JSON",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))

			var dest payload

			err := req.Read(r, &dest)
			if !tc.wantErr {
				rq.NoError(err)
				rq.NotNil(dest.Radius)

				return
			}

			rq.Error(err)
			rq.True(apperr.IsInvalidArgumentError(err))
			rq.Equal(errcodes.ValidationError, apperr.Code(err))

			if tc.description != "" {
				rq.Equal(tc.description, apperr.Description(err))
			}
		})
	}
}

func TestQueryInt(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		target  string
		want    int
		wantErr bool
	}{
		{name: "Absent", target: "/", want: 20},
		{name: "Present", target: "/?limit=5", want: 5},
		{name: "Not a number", target: "/?limit=five", wantErr: true},
		{name: "Too large", target: "/?limit=1000", wantErr: true},
		{name: "Too small", target: "/?limit=0", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			r := httptest.NewRequest(http.MethodGet, tc.target, http.NoBody)

			got, err := req.QueryInt(r, "limit", 20, 1, 100)
			if tc.wantErr {
				rq.True(apperr.IsInvalidArgumentError(err))
				rq.Equal(errcodes.InvalidPaging, apperr.Code(err))

				return
			}

			rq.NoError(err)
			rq.Equal(tc.want, got)
		})
	}
}
