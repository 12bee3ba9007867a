package ml

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// TrainTestSplit shuffles 0..n-1 with seed and returns disjoint train and test
// index sets. The test set gets ceil(n*testRatio) rows and both sets are
// non-empty.
func TrainTestSplit(n int, testRatio float64, seed uint64) ([]int, []int, error) {
	if !(testRatio > 0 && testRatio < 1) {
		return nil, nil, fmt.Errorf("test ratio %v: %w", testRatio, ErrInvalidRatio)
	}

	nTest := int(math.Ceil(float64(n) * testRatio))
	if n < 2 || nTest >= n { //nolint:mnd
		return nil, nil, fmt.Errorf("%d rows cannot be split with ratio %v: %w", n, testRatio, ErrEmptyData)
	}

	perm := rand.New(rand.NewPCG(seed, seed)).Perm(n) //nolint:gosec

	return perm[nTest:], perm[:nTest], nil
}

// Subset picks the rows and labels at indices.
func Subset(X [][]float64, y []int, indices []int) ([][]float64, []int) {
	subX := make([][]float64, len(indices))
	subY := make([]int, len(indices))

	for k, i := range indices {
		subX[k] = X[i]
		subY[k] = y[i]
	}

	return subX, subY
}
