package entity

import (
	"time"

	"cancer_api/internal/domain/value"
)

// Prediction holds class probabilities; Malignant + Benign == 1.
type Prediction struct {
	Malignant float64
	Benign    float64
}

func (p Prediction) Diagnosis() value.Diagnosis {
	if p.Malignant >= p.Benign {
		return value.Malignant
	}

	return value.Benign
}

// PredictionRecord is an audit entry of a served prediction.
type PredictionRecord struct {
	ID         string
	Cell       Cell
	Prediction Prediction
	TraceID    string
	CreatedAt  time.Time
}
