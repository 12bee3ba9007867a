package ml_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"cancer_api/pkg/ml"
	"cancer_api/pkg/tests"
)

// separable returns two gaussian-ish blobs: class 1 around (3, 3), class 0
// around (-3, -3).
func separable(n int) ([][]float64, []int) {
	r := tests.NewSeededRandomizer(42)

	X := make([][]float64, 0, n)
	y := make([]int, 0, n)

	for i := range n {
		center := -3.0
		label := 0

		if i%2 == 0 {
			center = 3
			label = 1
		}

		X = append(X, []float64{center + r.Between(-1, 1), center + r.Between(-1, 1)})
		y = append(y, label)
	}

	return X, y
}

func TestLogisticRegressionFit(t *testing.T) {
	rq := require.New(t)

	X, y := separable(200)

	model := ml.NewLogisticRegression(0)
	rq.False(model.Fitted())
	rq.NoError(model.Fit(X, y))
	rq.True(model.Fitted())

	report := ml.Evaluate(model, X, y)
	rq.InDelta(1.0, report.Accuracy, 1e-9)

	p0, p1 := model.PredictProba([]float64{3, 3})
	rq.Greater(p1, 0.9)
	rq.InDelta(1.0, p0+p1, 1e-12)

	p0, p1 = model.PredictProba([]float64{-3, -3})
	rq.Less(p1, 0.1)
	rq.InDelta(1.0, p0+p1, 1e-12)

	coefficients := model.Coefficients()
	rq.Len(coefficients, 2)
	rq.Positive(coefficients[0])
	rq.Positive(coefficients[1])

	// The L2 penalty keeps separable data from diverging.
	rq.False(math.IsInf(coefficients[0], 0))
	rq.Less(coefficients[0], 100.0)
}

func TestLogisticRegressionFitIsDeterministic(t *testing.T) {
	rq := require.New(t)

	X, y := separable(100)

	first := ml.NewLogisticRegression(1000)
	second := ml.NewLogisticRegression(1000)

	rq.NoError(first.Fit(X, y))
	rq.NoError(second.Fit(X, y))

	rq.Equal(first.Coefficients(), second.Coefficients())
	rq.Equal(first.Intercept(), second.Intercept())
}

func TestLogisticRegressionConstantFeature(t *testing.T) {
	rq := require.New(t)

	X := [][]float64{{1, 5}, {2, 5}, {8, 5}, {9, 5}}
	y := []int{0, 0, 1, 1}

	model := ml.NewLogisticRegression(0)
	rq.NoError(model.Fit(X, y))

	_, low := model.PredictProba([]float64{1, 5})
	_, high := model.PredictProba([]float64{9, 5})
	rq.Less(low, high)
	rq.InDelta(0.0, model.Coefficients()[1], 1e-6)
}

func TestLogisticRegressionFitErrors(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name string
		X    [][]float64
		y    []int
		err  error
	}{
		{
			name: "Empty",
			err:  ml.ErrEmptyData,
		},
		{
			name: "Length mismatch",
			X:    [][]float64{{1}, {2}},
			y:    []int{1},
			err:  ml.ErrDimensionMismatch,
		},
		{
			name: "Ragged rows",
			X:    [][]float64{{1, 2}, {2}},
			y:    []int{0, 1},
			err:  ml.ErrDimensionMismatch,
		},
		{
			name: "Single class",
			X:    [][]float64{{1}, {2}},
			y:    []int{1, 1},
			err:  ml.ErrSingleClass,
		},
		{
			name: "NaN",
			X:    [][]float64{{1}, {math.NaN()}},
			y:    []int{0, 1},
			err:  ml.ErrNonFinite,
		},
		{
			name: "Bad label",
			X:    [][]float64{{1}, {2}},
			y:    []int{0, 2},
			err:  ml.ErrInvalidLabel,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.ErrorIs(ml.NewLogisticRegression(0).Fit(tc.X, tc.y), tc.err)
		})
	}
}

func TestLogisticRegressionUnfitted(t *testing.T) {
	rq := require.New(t)

	p0, p1 := ml.NewLogisticRegression(0).PredictProba([]float64{1})
	rq.True(math.IsNaN(p0))
	rq.True(math.IsNaN(p1))
}
