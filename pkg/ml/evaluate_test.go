package ml_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cancer_api/pkg/ml"
)

type thresholdPredictor float64

func (t thresholdPredictor) PredictProba(x []float64) (float64, float64) {
	if x[0] > float64(t) {
		return 0, 1
	}

	return 1, 0
}

func TestEvaluate(t *testing.T) {
	rq := require.New(t)

	X := [][]float64{{0}, {1}, {2}, {3}, {4}}
	y := []int{0, 1, 0, 1, 1}

	report := ml.Evaluate(thresholdPredictor(1.5), X, y)

	rq.Equal(2, report.TruePositives)
	rq.Equal(1, report.FalsePositives)
	rq.Equal(1, report.TrueNegatives)
	rq.Equal(1, report.FalseNegatives)
	rq.InDelta(0.6, report.Accuracy, 1e-12)
	rq.InDelta(2.0/3, report.Precision, 1e-12)
	rq.InDelta(2.0/3, report.Recall, 1e-12)
	rq.InDelta(2.0/3, report.F1, 1e-12)
}

func TestEvaluateNoPositives(t *testing.T) {
	rq := require.New(t)

	report := ml.Evaluate(thresholdPredictor(100), [][]float64{{1}, {2}}, []int{0, 1})

	rq.Zero(report.Precision)
	rq.Zero(report.F1)
	rq.InDelta(0.5, report.Accuracy, 1e-12)
}
