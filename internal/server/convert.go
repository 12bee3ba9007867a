package server

import (
	"github.com/samber/lo"

	"cancer_api/internal/domain/entity"
	"cancer_api/internal/domain/value"
	"cancer_api/pkg/rest"
)

const weightsSource = "decision_tree"

// newDomainCell expects a validated request, every field is set.
func newDomainCell(cell rest.Cell) entity.Cell {
	return entity.Cell{
		PerimeterMean:  lo.FromPtr(cell.PerimeterMean),
		RadiusMean:     lo.FromPtr(cell.RadiusMean),
		TextureMean:    lo.FromPtr(cell.TextureMean),
		AreaMean:       lo.FromPtr(cell.AreaMean),
		SmoothnessMean: lo.FromPtr(cell.SmoothnessMean),
		ConcavityMean:  lo.FromPtr(cell.ConcavityMean),
		SymmetryMean:   lo.FromPtr(cell.SymmetryMean),
	}
}

func newRESTCell(cell entity.Cell) rest.Cell {
	return rest.Cell{
		PerimeterMean:  lo.ToPtr(cell.PerimeterMean),
		RadiusMean:     lo.ToPtr(cell.RadiusMean),
		TextureMean:    lo.ToPtr(cell.TextureMean),
		AreaMean:       lo.ToPtr(cell.AreaMean),
		SmoothnessMean: lo.ToPtr(cell.SmoothnessMean),
		ConcavityMean:  lo.ToPtr(cell.ConcavityMean),
		SymmetryMean:   lo.ToPtr(cell.SymmetryMean),
	}
}

func newRESTPrediction(p entity.Prediction) rest.Prediction {
	return rest.Prediction{
		Malignant: p.Malignant,
		Benign:    p.Benign,
	}
}

func byFeatureName(m map[value.Feature]float64) map[string]float64 {
	return lo.MapKeys(m, func(_ float64, f value.Feature) string {
		return f.String()
	})
}

func newRESTFeatureWeights(weights entity.FeatureWeights) rest.FeatureWeights {
	return rest.FeatureWeights{
		Source:  weightsSource,
		Weights: byFeatureName(weights),
	}
}

func newRESTModelInfo(info entity.ModelInfo) rest.ModelInfo {
	result := rest.ModelInfo{
		Features:     lo.Map(info.Features, func(f value.Feature, _ int) string { return f.String() }),
		DatasetSize:  info.DatasetSize,
		Coefficients: byFeatureName(info.Coefficients),
		Intercept:    info.Intercept,
		TrainedAt:    info.TrainedAt,
	}

	if e := info.Evaluation; e != nil {
		result.Evaluation = &rest.Evaluation{
			TrainSize: e.TrainSize,
			TestSize:  e.TestSize,
			Accuracy:  e.Accuracy,
			Precision: e.Precision,
			Recall:    e.Recall,
			F1:        e.F1,
		}
	}

	return result
}

func newRESTPredictionRecord(record entity.PredictionRecord) rest.PredictionRecord {
	return rest.PredictionRecord{
		ID:         record.ID,
		Cell:       newRESTCell(record.Cell),
		Prediction: newRESTPrediction(record.Prediction),
		TraceID:    record.TraceID,
		CreatedAt:  record.CreatedAt,
	}
}
