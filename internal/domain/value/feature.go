package value

// Feature is a dataset column used by the classifiers.
type Feature string

const (
	PerimeterMean  Feature = "perimeter_mean"
	RadiusMean     Feature = "radius_mean"
	TextureMean    Feature = "texture_mean"
	AreaMean       Feature = "area_mean"
	SmoothnessMean Feature = "smoothness_mean"
	ConcavityMean  Feature = "concavity_mean"
	SymmetryMean   Feature = "symmetry_mean"
)

// Features returns the feature columns in model order. Vectors built from a
// cell follow this order.
func Features() []Feature {
	return []Feature{
		PerimeterMean,
		RadiusMean,
		TextureMean,
		AreaMean,
		SmoothnessMean,
		ConcavityMean,
		SymmetryMean,
	}
}

func (f Feature) String() string {
	return string(f)
}
