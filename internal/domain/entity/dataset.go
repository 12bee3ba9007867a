package entity

import "cancer_api/internal/domain/value"

type Sample struct {
	Cell      Cell
	Diagnosis value.Diagnosis
}

// Dataset is the labelled training data. It is not modified once loaded.
type Dataset struct {
	Samples []Sample
}

func (d Dataset) Len() int {
	return len(d.Samples)
}

// Matrix returns the feature rows and binary labels, malignant being 1.
func (d Dataset) Matrix() ([][]float64, []int) {
	X := make([][]float64, len(d.Samples))
	y := make([]int, len(d.Samples))

	for i, s := range d.Samples {
		X[i] = s.Cell.Vector()
		y[i] = s.Diagnosis.Label()
	}

	return X, y
}

// Count returns the number of samples per diagnosis.
func (d Dataset) Count() map[value.Diagnosis]int {
	counts := make(map[value.Diagnosis]int, 2) //nolint:mnd

	for _, s := range d.Samples {
		counts[s.Diagnosis]++
	}

	return counts
}
