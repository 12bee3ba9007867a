package persistence

import (
	"fmt"
	"time"

	"cancer_api/internal/domain/entity"
	"cancer_api/internal/domain/value"
)

// CellColumns are the measurement columns shared by both tables.
type CellColumns struct {
	PerimeterMean  float64 `db:"perimeter_mean"`
	RadiusMean     float64 `db:"radius_mean"`
	TextureMean    float64 `db:"texture_mean"`
	AreaMean       float64 `db:"area_mean"`
	SmoothnessMean float64 `db:"smoothness_mean"`
	ConcavityMean  float64 `db:"concavity_mean"`
	SymmetryMean   float64 `db:"symmetry_mean"`
}

func fromCell(c entity.Cell) CellColumns {
	return CellColumns{
		PerimeterMean:  c.PerimeterMean,
		RadiusMean:     c.RadiusMean,
		TextureMean:    c.TextureMean,
		AreaMean:       c.AreaMean,
		SmoothnessMean: c.SmoothnessMean,
		ConcavityMean:  c.ConcavityMean,
		SymmetryMean:   c.SymmetryMean,
	}
}

func (c CellColumns) toDomain() entity.Cell {
	return entity.Cell{
		PerimeterMean:  c.PerimeterMean,
		RadiusMean:     c.RadiusMean,
		TextureMean:    c.TextureMean,
		AreaMean:       c.AreaMean,
		SmoothnessMean: c.SmoothnessMean,
		ConcavityMean:  c.ConcavityMean,
		SymmetryMean:   c.SymmetryMean,
	}
}

// sampleSchema is a row of cancer_samples.
type sampleSchema struct {
	CellColumns

	Position  int    `db:"position"`
	Diagnosis string `db:"diagnosis"`
}

func fromSample(position int, s entity.Sample) sampleSchema {
	return sampleSchema{
		CellColumns: fromCell(s.Cell),
		Position:    position,
		Diagnosis:   s.Diagnosis.Code(),
	}
}

func (s sampleSchema) toDomain() (entity.Sample, error) {
	diagnosis, err := value.ParseDiagnosis(s.Diagnosis)
	if err != nil {
		return entity.Sample{}, fmt.Errorf("sample %d: %w", s.Position, err)
	}

	return entity.Sample{
		Cell:      s.CellColumns.toDomain(),
		Diagnosis: diagnosis,
	}, nil
}

// predictionSchema is a row of predictions.
type predictionSchema struct {
	CellColumns

	ID        string    `db:"id"`
	Malignant float64   `db:"malignant"`
	Benign    float64   `db:"benign"`
	TraceID   string    `db:"trace_id"`
	CreatedAt time.Time `db:"created_at"`
}

func fromPredictionRecord(r entity.PredictionRecord) predictionSchema {
	return predictionSchema{
		CellColumns: fromCell(r.Cell),
		ID:          r.ID,
		Malignant:   r.Prediction.Malignant,
		Benign:      r.Prediction.Benign,
		TraceID:     r.TraceID,
		CreatedAt:   r.CreatedAt.UTC(),
	}
}

func (s predictionSchema) toDomain() entity.PredictionRecord {
	return entity.PredictionRecord{
		ID:   s.ID,
		Cell: s.CellColumns.toDomain(),
		Prediction: entity.Prediction{
			Malignant: s.Malignant,
			Benign:    s.Benign,
		},
		TraceID:   s.TraceID,
		CreatedAt: s.CreatedAt.UTC(),
	}
}
