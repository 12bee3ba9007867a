package entity

import (
	"fmt"
	"math"

	"cancer_api/internal/domain/value"
)

// Cell holds the measurements of one cell nucleus sample.
type Cell struct {
	PerimeterMean  float64
	RadiusMean     float64
	TextureMean    float64
	AreaMean       float64
	SmoothnessMean float64
	ConcavityMean  float64
	SymmetryMean   float64
}

// Vector returns the measurements in value.Features order.
func (c Cell) Vector() []float64 {
	return []float64{
		c.PerimeterMean,
		c.RadiusMean,
		c.TextureMean,
		c.AreaMean,
		c.SmoothnessMean,
		c.ConcavityMean,
		c.SymmetryMean,
	}
}

// Get returns the measurement of feature f.
func (c Cell) Get(f value.Feature) (float64, bool) {
	switch f {
	case value.PerimeterMean:
		return c.PerimeterMean, true
	case value.RadiusMean:
		return c.RadiusMean, true
	case value.TextureMean:
		return c.TextureMean, true
	case value.AreaMean:
		return c.AreaMean, true
	case value.SmoothnessMean:
		return c.SmoothnessMean, true
	case value.ConcavityMean:
		return c.ConcavityMean, true
	case value.SymmetryMean:
		return c.SymmetryMean, true
	default:
		return 0, false
	}
}

// Set stores v as the measurement of feature f and reports whether f is known.
func (c *Cell) Set(f value.Feature, v float64) bool {
	switch f {
	case value.PerimeterMean:
		c.PerimeterMean = v
	case value.RadiusMean:
		c.RadiusMean = v
	case value.TextureMean:
		c.TextureMean = v
	case value.AreaMean:
		c.AreaMean = v
	case value.SmoothnessMean:
		c.SmoothnessMean = v
	case value.ConcavityMean:
		c.ConcavityMean = v
	case value.SymmetryMean:
		c.SymmetryMean = v
	default:
		return false
	}

	return true
}

// Validate rejects NaN and infinite measurements.
func (c Cell) Validate() error {
	for i, v := range c.Vector() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s is not a finite number", value.Features()[i])
		}
	}

	return nil
}
