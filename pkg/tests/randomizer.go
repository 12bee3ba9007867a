package tests

import (
	"math/rand"
	"time"
)

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	Between func(lowest, highest float64) float64
	Norm    func(mean, stddev float64) float64
}

func NewRandomizer() Randomizer {
	return NewSeededRandomizer(time.Now().Unix())
}

func NewSeededRandomizer(seed int64) Randomizer {
	random := rand.New(rand.NewSource(seed)) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Between: func(lowest, highest float64) float64 {
			return lowest + random.Float64()*(highest-lowest)
		},
		Norm: func(mean, stddev float64) float64 {
			return mean + random.NormFloat64()*stddev
		},
	}
}
