package ml_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"cancer_api/pkg/ml"
)

func TestTrainTestSplit(t *testing.T) {
	rq := require.New(t)

	train, test, err := ml.TrainTestSplit(10, 0.2, 7)
	rq.NoError(err)
	rq.Len(train, 8)
	rq.Len(test, 2)

	all := slices.Concat(train, test)
	slices.Sort(all)
	rq.Equal([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, all)

	train2, test2, err := ml.TrainTestSplit(10, 0.2, 7)
	rq.NoError(err)
	rq.Equal(train, train2)
	rq.Equal(test, test2)

	_, test3, err := ml.TrainTestSplit(11, 0.2, 7)
	rq.NoError(err)
	rq.Len(test3, 3)
}

func TestTrainTestSplitErrors(t *testing.T) {
	rq := require.New(t)

	_, _, err := ml.TrainTestSplit(10, 0, 1)
	rq.ErrorIs(err, ml.ErrInvalidRatio)

	_, _, err = ml.TrainTestSplit(10, 1, 1)
	rq.ErrorIs(err, ml.ErrInvalidRatio)

	_, _, err = ml.TrainTestSplit(1, 0.5, 1)
	rq.ErrorIs(err, ml.ErrEmptyData)
}

func TestSubset(t *testing.T) {
	rq := require.New(t)

	X, y := ml.Subset([][]float64{{0}, {1}, {2}}, []int{0, 1, 0}, []int{2, 1})

	rq.Equal([][]float64{{2}, {1}}, X)
	rq.Equal([]int{0, 1}, y)
}
