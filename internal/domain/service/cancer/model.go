// Package cancer serves the breast cancer classifier: a logistic regression
// answers predictions, a decision tree fitted on the same data reports feature
// importances.
package cancer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cancer_api/internal/domain"
	"cancer_api/internal/domain/entity"
	"cancer_api/internal/domain/value"
	"cancer_api/pkg/errcodes"
	"cancer_api/pkg/logx"
	"cancer_api/pkg/ml"
)

type TrainOptions struct {
	MaxIterations int
	TreeMaxDepth  int
	// TestRatio > 0 adds a hold-out evaluation of a separately fitted model.
	TestRatio float64
	Seed      uint64
}

// Model is immutable after Train and safe for concurrent use.
type Model struct {
	features    []value.Feature
	logistic    *ml.LogisticRegression
	tree        *ml.DecisionTree
	datasetSize int
	trainedAt   time.Time
	evaluation  *entity.Evaluation
}

// Train fits both classifiers on the whole dataset. The hold-out evaluation
// never touches the serving model, and its failure is only logged.
func Train(ctx context.Context, ds entity.Dataset, opts TrainOptions) (*Model, error) {
	if ds.Len() == 0 {
		return nil, domain.NewError(errcodes.DatasetEmpty, "dataset is empty")
	}

	X, y := ds.Matrix()

	logistic := ml.NewLogisticRegression(opts.MaxIterations)
	if err := logistic.Fit(X, y); err != nil {
		return nil, domain.WrapError(err, errcodes.DatasetInvalid, "fit logistic regression")
	}

	tree := ml.NewDecisionTree(opts.TreeMaxDepth)
	if err := tree.Fit(X, y); err != nil {
		return nil, domain.WrapError(err, errcodes.DatasetInvalid, "fit decision tree")
	}

	m := &Model{
		features:    value.Features(),
		logistic:    logistic,
		tree:        tree,
		datasetSize: ds.Len(),
		trainedAt:   time.Now().UTC(),
	}

	logger(ctx).Info(
		"model trained",
		slog.Int(logx.FieldDatasetSize, ds.Len()),
		slog.String("optimizer-status", logistic.Status().String()),
		slog.Int("tree-depth", tree.Depth()),
		slog.Int("tree-leaves", tree.Leaves()),
	)

	if opts.TestRatio > 0 {
		evaluation, err := evaluate(X, y, opts)
		if err != nil {
			logger(ctx).Warn("hold-out evaluation skipped", logx.Error(err))
		} else {
			m.evaluation = &evaluation

			logger(ctx).Info(
				"hold-out evaluation",
				slog.Int("train-size", evaluation.TrainSize),
				slog.Int("test-size", evaluation.TestSize),
				slog.Float64("accuracy", evaluation.Accuracy),
				slog.Float64("precision", evaluation.Precision),
				slog.Float64("recall", evaluation.Recall),
				slog.Float64("f1", evaluation.F1),
			)
		}
	}

	return m, nil
}

func evaluate(X [][]float64, y []int, opts TrainOptions) (entity.Evaluation, error) {
	trainIdx, testIdx, err := ml.TrainTestSplit(len(X), opts.TestRatio, opts.Seed)
	if err != nil {
		return entity.Evaluation{}, fmt.Errorf("ml.TrainTestSplit: %w", err)
	}

	trainX, trainY := ml.Subset(X, y, trainIdx)
	testX, testY := ml.Subset(X, y, testIdx)

	logistic := ml.NewLogisticRegression(opts.MaxIterations)
	if err = logistic.Fit(trainX, trainY); err != nil {
		return entity.Evaluation{}, fmt.Errorf("logistic.Fit: %w", err)
	}

	report := ml.Evaluate(logistic, testX, testY)

	return entity.Evaluation{
		TrainSize: len(trainIdx),
		TestSize:  len(testIdx),
		Accuracy:  report.Accuracy,
		Precision: report.Precision,
		Recall:    report.Recall,
		F1:        report.F1,
	}, nil
}

// Predict returns the class probabilities of cell. Malignant is the positive
// class of the logistic regression.
func (m *Model) Predict(cell entity.Cell) entity.Prediction {
	_, malignant := m.logistic.PredictProba(cell.Vector())

	return entity.Prediction{
		Malignant: malignant,
		Benign:    1 - malignant,
	}
}

// FeatureWeights reports decision tree importances. They do not explain the
// logistic regression used by Predict.
func (m *Model) FeatureWeights() entity.FeatureWeights {
	importances := m.tree.FeatureImportances()
	weights := make(entity.FeatureWeights, len(m.features))

	for i, f := range m.features {
		weights[f] = importances[i]
	}

	return weights
}

func (m *Model) Info() entity.ModelInfo {
	coefficients := m.logistic.Coefficients()
	byFeature := make(map[value.Feature]float64, len(m.features))

	for i, f := range m.features {
		byFeature[f] = coefficients[i]
	}

	info := entity.ModelInfo{
		Features:     append([]value.Feature(nil), m.features...),
		DatasetSize:  m.datasetSize,
		Coefficients: byFeature,
		Intercept:    m.logistic.Intercept(),
		TrainedAt:    m.trainedAt,
	}

	if m.evaluation != nil {
		evaluation := *m.evaluation
		info.Evaluation = &evaluation
	}

	return info
}
