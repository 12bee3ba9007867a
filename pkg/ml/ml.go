// Package ml implements the binary classifiers served by the API. Labels are
// 0 (negative) and 1 (positive); rows are dense feature vectors of equal length.
package ml

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyData         = errors.New("empty data")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrSingleClass       = errors.New("only one class present")
	ErrNonFinite         = errors.New("non-finite value")
	ErrInvalidLabel      = errors.New("label must be 0 or 1")
	ErrInvalidRatio      = errors.New("ratio must be in (0, 1)")
)

type Predictor interface {
	PredictProba(x []float64) (p0, p1 float64)
}

type Classifier interface {
	Predictor
	Fit(X [][]float64, y []int) error
}

// Predict thresholds the positive class probability at 0.5.
func Predict(p Predictor, x []float64) int {
	if _, p1 := p.PredictProba(x); p1 >= 0.5 { //nolint:mnd
		return 1
	}

	return 0
}

// validate checks a training set and returns the number of features.
func validate(X [][]float64, y []int, requireBothClasses bool) (int, error) {
	if len(X) == 0 {
		return 0, ErrEmptyData
	}

	if len(X) != len(y) {
		return 0, fmt.Errorf("%d rows, %d labels: %w", len(X), len(y), ErrDimensionMismatch)
	}

	nFeatures := len(X[0])
	if nFeatures == 0 {
		return 0, ErrEmptyData
	}

	var positives int

	for i, row := range X {
		if len(row) != nFeatures {
			return 0, fmt.Errorf("row %d has %d features, want %d: %w", i, len(row), nFeatures, ErrDimensionMismatch)
		}

		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, fmt.Errorf("row %d feature %d: %w", i, j, ErrNonFinite)
			}
		}

		switch y[i] {
		case 0:
		case 1:
			positives++
		default:
			return 0, fmt.Errorf("row %d label %d: %w", i, y[i], ErrInvalidLabel)
		}
	}

	if requireBothClasses && (positives == 0 || positives == len(y)) {
		return 0, ErrSingleClass
	}

	return nFeatures, nil
}
