package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cancer_api/internal/domain/value"
)

func TestParseDiagnosis(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		input     string
		diagnosis value.Diagnosis
		err       bool
	}{
		{input: "M", diagnosis: value.Malignant},
		{input: "b", diagnosis: value.Benign},
		{input: " Malignant ", diagnosis: value.Malignant},
		{input: "BENIGN", diagnosis: value.Benign},
		{input: "1", diagnosis: value.Malignant},
		{input: "0", diagnosis: value.Benign},
		{input: "x", err: true},
		{input: "", err: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(*testing.T) {
			diagnosis, err := value.ParseDiagnosis(tc.input)
			if tc.err {
				rq.ErrorIs(err, value.ErrUnknownDiagnosis)

				return
			}

			rq.NoError(err)
			rq.Equal(tc.diagnosis, diagnosis)
		})
	}
}

func TestDiagnosisLabel(t *testing.T) {
	rq := require.New(t)

	rq.Equal(1, value.Malignant.Label())
	rq.Equal(0, value.Benign.Label())
	rq.Equal("M", value.Malignant.Code())
	rq.Equal("B", value.Benign.Code())
}

func TestFeaturesOrder(t *testing.T) {
	rq := require.New(t)

	rq.Equal([]value.Feature{
		"perimeter_mean",
		"radius_mean",
		"texture_mean",
		"area_mean",
		"smoothness_mean",
		"concavity_mean",
		"symmetry_mean",
	}, value.Features())
}
