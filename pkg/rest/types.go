// Package rest holds the wire types of the public HTTP API.
package rest

import "time"

// Cell is the prediction request. Every measurement is required, a zero value
// is accepted.
type Cell struct {
	PerimeterMean  *float64 `json:"perimeter_mean"  validate:"required"`
	RadiusMean     *float64 `json:"radius_mean"     validate:"required"`
	TextureMean    *float64 `json:"texture_mean"    validate:"required"`
	AreaMean       *float64 `json:"area_mean"       validate:"required"`
	SmoothnessMean *float64 `json:"smoothness_mean" validate:"required"`
	ConcavityMean  *float64 `json:"concavity_mean"  validate:"required"`
	SymmetryMean   *float64 `json:"symmetry_mean"   validate:"required"`
}

type Prediction struct {
	Malignant float64 `json:"malignant"`
	Benign    float64 `json:"benign"`
}

// FeatureWeights are decision tree importances, not logistic coefficients.
type FeatureWeights struct {
	Source  string             `json:"source"`
	Weights map[string]float64 `json:"weights"`
}

type Evaluation struct {
	TrainSize int     `json:"trainSize"`
	TestSize  int     `json:"testSize"`
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

type ModelInfo struct {
	Features     []string           `json:"features"`
	DatasetSize  int                `json:"datasetSize"`
	Coefficients map[string]float64 `json:"coefficients"`
	Intercept    float64            `json:"intercept"`
	TrainedAt    time.Time          `json:"trainedAt"`
	Evaluation   *Evaluation        `json:"evaluation,omitempty"`
}

type PredictionRecord struct {
	ID         string     `json:"id"`
	Cell       Cell       `json:"cell"`
	Prediction Prediction `json:"prediction"`
	TraceID    string     `json:"traceId"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type PredictionRecords struct {
	Items []PredictionRecord `json:"items"`
}

type Error struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	SupportID string    `json:"supportId"`
}

type ErrorCode string
