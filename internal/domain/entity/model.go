package entity

import (
	"time"

	"cancer_api/internal/domain/value"
)

// FeatureWeights maps each feature to its decision tree importance.
type FeatureWeights map[value.Feature]float64

type Evaluation struct {
	TrainSize int
	TestSize  int
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
}

type ModelInfo struct {
	Features     []value.Feature
	DatasetSize  int
	Coefficients map[value.Feature]float64
	Intercept    float64
	TrainedAt    time.Time
	Evaluation   *Evaluation
}
