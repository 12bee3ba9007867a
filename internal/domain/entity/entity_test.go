package entity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"cancer_api/internal/domain/entity"
	"cancer_api/internal/domain/value"
)

func TestCellVectorFollowsFeatureOrder(t *testing.T) {
	rq := require.New(t)

	cell := entity.Cell{
		PerimeterMean:  123,
		RadiusMean:     21,
		TextureMean:    20,
		AreaMean:       1020,
		SmoothnessMean: 0.1,
		ConcavityMean:  0.2,
		SymmetryMean:   0.25,
	}

	rq.Equal([]float64{123, 21, 20, 1020, 0.1, 0.2, 0.25}, cell.Vector())

	for i, f := range value.Features() {
		v, ok := cell.Get(f)
		rq.True(ok)
		rq.Equal(cell.Vector()[i], v)
	}

	_, ok := cell.Get("compactness_mean")
	rq.False(ok)
}

func TestCellSet(t *testing.T) {
	rq := require.New(t)

	var cell entity.Cell

	for i, f := range value.Features() {
		rq.True(cell.Set(f, float64(i+1)))
	}

	rq.Equal([]float64{1, 2, 3, 4, 5, 6, 7}, cell.Vector())
	rq.False(cell.Set("id", 1))
}

func TestCellValidate(t *testing.T) {
	rq := require.New(t)

	rq.NoError(entity.Cell{}.Validate())
	rq.EqualError(entity.Cell{AreaMean: math.Inf(1)}.Validate(), "area_mean is not a finite number")
	rq.Error(entity.Cell{SymmetryMean: math.NaN()}.Validate())
}

func TestDatasetMatrix(t *testing.T) {
	rq := require.New(t)

	ds := entity.Dataset{Samples: []entity.Sample{
		{Cell: entity.Cell{RadiusMean: 20}, Diagnosis: value.Malignant},
		{Cell: entity.Cell{RadiusMean: 10}, Diagnosis: value.Benign},
		{Cell: entity.Cell{RadiusMean: 11}, Diagnosis: value.Benign},
	}}

	X, y := ds.Matrix()

	rq.Len(X, 3)
	rq.Equal([]int{1, 0, 0}, y)
	rq.Equal(20.0, X[0][1])
	rq.Equal(3, ds.Len())
	rq.Equal(map[value.Diagnosis]int{value.Malignant: 1, value.Benign: 2}, ds.Count())
}

func TestPredictionDiagnosis(t *testing.T) {
	rq := require.New(t)

	rq.Equal(value.Malignant, entity.Prediction{Malignant: 0.7, Benign: 0.3}.Diagnosis())
	rq.Equal(value.Benign, entity.Prediction{Malignant: 0.2, Benign: 0.8}.Diagnosis())
}
