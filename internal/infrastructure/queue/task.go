// Package queue carries prediction records to the audit worker as asynq
// tasks.
package queue

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"

	"cancer_api/internal/domain/entity"
)

const TypePredictionRecord = "prediction:record"

type predictionPayload struct {
	ID             string    `json:"id"`
	PerimeterMean  float64   `json:"perimeter_mean"`
	RadiusMean     float64   `json:"radius_mean"`
	TextureMean    float64   `json:"texture_mean"`
	AreaMean       float64   `json:"area_mean"`
	SmoothnessMean float64   `json:"smoothness_mean"`
	ConcavityMean  float64   `json:"concavity_mean"`
	SymmetryMean   float64   `json:"symmetry_mean"`
	Malignant      float64   `json:"malignant"`
	Benign         float64   `json:"benign"`
	TraceID        string    `json:"trace_id"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewPredictionTask(record entity.PredictionRecord) (*asynq.Task, error) {
	payload, err := jsoniter.Marshal(predictionPayload{
		ID:             record.ID,
		PerimeterMean:  record.Cell.PerimeterMean,
		RadiusMean:     record.Cell.RadiusMean,
		TextureMean:    record.Cell.TextureMean,
		AreaMean:       record.Cell.AreaMean,
		SmoothnessMean: record.Cell.SmoothnessMean,
		ConcavityMean:  record.Cell.ConcavityMean,
		SymmetryMean:   record.Cell.SymmetryMean,
		Malignant:      record.Prediction.Malignant,
		Benign:         record.Prediction.Benign,
		TraceID:        record.TraceID,
		CreatedAt:      record.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("jsoniter.Marshal: %w", err)
	}

	return asynq.NewTask(TypePredictionRecord, payload), nil
}

func ParsePredictionTask(task *asynq.Task) (entity.PredictionRecord, error) {
	if task.Type() != TypePredictionRecord {
		return entity.PredictionRecord{}, fmt.Errorf("unexpected task type %q", task.Type())
	}

	var p predictionPayload
	if err := jsoniter.Unmarshal(task.Payload(), &p); err != nil {
		return entity.PredictionRecord{}, fmt.Errorf("jsoniter.Unmarshal: %w", err)
	}

	if p.ID == "" {
		return entity.PredictionRecord{}, fmt.Errorf("prediction record without id")
	}

	return entity.PredictionRecord{
		ID: p.ID,
		Cell: entity.Cell{
			PerimeterMean:  p.PerimeterMean,
			RadiusMean:     p.RadiusMean,
			TextureMean:    p.TextureMean,
			AreaMean:       p.AreaMean,
			SmoothnessMean: p.SmoothnessMean,
			ConcavityMean:  p.ConcavityMean,
			SymmetryMean:   p.SymmetryMean,
		},
		Prediction: entity.Prediction{
			Malignant: p.Malignant,
			Benign:    p.Benign,
		},
		TraceID:   p.TraceID,
		CreatedAt: p.CreatedAt,
	}, nil
}
