// Package cancertest builds synthetic datasets for tests. Class means and
// spreads roughly follow the Wisconsin diagnostic data.
package cancertest

import (
	"context"
	"math"
	"sync/atomic"

	"cancer_api/internal/domain/entity"
	"cancer_api/internal/domain/value"
	"cancer_api/pkg/tests"
)

type distribution struct {
	mean   float64
	stddev float64
}

//nolint:gochecknoglobals,mnd
var profiles = map[value.Diagnosis]map[value.Feature]distribution{
	value.Benign: {
		value.RadiusMean:     {12.1, 1.8},
		value.TextureMean:    {17.9, 4.0},
		value.SmoothnessMean: {0.092, 0.013},
		value.ConcavityMean:  {0.046, 0.043},
		value.SymmetryMean:   {0.174, 0.025},
	},
	value.Malignant: {
		value.RadiusMean:     {17.5, 3.2},
		value.TextureMean:    {21.6, 3.8},
		value.SmoothnessMean: {0.103, 0.013},
		value.ConcavityMean:  {0.161, 0.075},
		value.SymmetryMean:   {0.193, 0.028},
	},
}

// Cell draws a plausible cell for diagnosis. Perimeter and area are derived
// from the radius.
func Cell(r tests.Randomizer, diagnosis value.Diagnosis) entity.Cell {
	profile := profiles[diagnosis]

	draw := func(f value.Feature) float64 {
		d := profile[f]
		return math.Max(r.Norm(d.mean, d.stddev), d.mean/10) //nolint:mnd
	}

	radius := draw(value.RadiusMean)

	return entity.Cell{
		PerimeterMean:  2 * math.Pi * radius * r.Between(0.98, 1.05),
		RadiusMean:     radius,
		TextureMean:    draw(value.TextureMean),
		AreaMean:       math.Pi * radius * radius * r.Between(0.95, 1.05),
		SmoothnessMean: draw(value.SmoothnessMean),
		ConcavityMean:  draw(value.ConcavityMean),
		SymmetryMean:   draw(value.SymmetryMean),
	}
}

// Dataset returns n samples, roughly 37% malignant, deterministic for a seed.
func Dataset(n int, seed int64) entity.Dataset {
	r := tests.NewSeededRandomizer(seed)
	samples := make([]entity.Sample, n)

	for i := range samples {
		diagnosis := value.Benign
		if r.Float64() < 0.37 { //nolint:mnd
			diagnosis = value.Malignant
		}

		samples[i] = entity.Sample{
			Cell:      Cell(r, diagnosis),
			Diagnosis: diagnosis,
		}
	}

	return entity.Dataset{Samples: samples}
}

// Source serves a fixed dataset or error and counts loads.
type Source struct {
	Dataset entity.Dataset
	Err     error
	loads   atomic.Int64
}

func NewSource(ds entity.Dataset) *Source {
	return &Source{Dataset: ds}
}

func (s *Source) Name() string {
	return "static"
}

func (s *Source) Load(ctx context.Context) (entity.Dataset, error) {
	s.loads.Add(1)

	if err := ctx.Err(); err != nil {
		return entity.Dataset{}, err
	}

	return s.Dataset, s.Err
}

func (s *Source) Loads() int {
	return int(s.loads.Load())
}
