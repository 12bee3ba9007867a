package ml

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

const (
	DefaultMaxIterations = 1000
	defaultC             = 1.0
	gradientThreshold    = 1e-6
)

// LogisticRegression is an L2 regularised binary logistic regression fitted
// with L-BFGS. The objective is 0.5*|w|^2 + C*sum(logloss); the intercept is
// not penalised. Features are standardised with the training mean and sample
// standard deviation, so Coefficients are in standardised units.
type LogisticRegression struct {
	C             float64
	MaxIterations int

	mean      []float64
	std       []float64
	weights   []float64
	intercept float64
	status    optimize.Status
}

func NewLogisticRegression(maxIterations int) *LogisticRegression {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	return &LogisticRegression{
		C:             defaultC,
		MaxIterations: maxIterations,
	}
}

func (m *LogisticRegression) Fit(X [][]float64, y []int) error {
	nFeatures, err := validate(X, y, true)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	c := m.C
	if c <= 0 {
		c = defaultC
	}

	maxIterations := m.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	mean, std := standardScale(X, nFeatures)

	Z := make([][]float64, len(X))
	for i, row := range X {
		Z[i] = scale(row, mean, std)
	}

	labels := make([]float64, len(y))
	for i, label := range y {
		labels[i] = float64(label)
	}

	// x[:nFeatures] are the weights, x[nFeatures] is the intercept.
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			w, b := x[:nFeatures], x[nFeatures]
			loss := 0.5 * floats.Dot(w, w) //nolint:mnd

			for i, z := range Z {
				margin := floats.Dot(w, z) + b
				loss += c * (softplus(margin) - labels[i]*margin)
			}

			return loss
		},
		Grad: func(grad, x []float64) {
			w, b := x[:nFeatures], x[nFeatures]

			copy(grad[:nFeatures], w)
			grad[nFeatures] = 0

			for i, z := range Z {
				residual := c * (sigmoid(floats.Dot(w, z)+b) - labels[i])

				floats.AddScaled(grad[:nFeatures], residual, z)
				grad[nFeatures] += residual
			}
		},
	}

	settings := &optimize.Settings{
		MajorIterations:   maxIterations,
		GradientThreshold: gradientThreshold,
	}

	result, err := optimize.Minimize(problem, make([]float64, nFeatures+1), settings, &optimize.LBFGS{})
	if err != nil && !isNearOptimum(err, result) {
		return fmt.Errorf("optimize.Minimize: %w", err)
	}

	m.mean = mean
	m.std = std
	m.weights = append([]float64(nil), result.X[:nFeatures]...)
	m.intercept = result.X[nFeatures]
	m.status = result.Status

	return nil
}

// isNearOptimum accepts line search failures that happen once the objective
// is flat at the reached location.
func isNearOptimum(err error, result *optimize.Result) bool {
	if result == nil || math.IsNaN(result.F) || math.IsInf(result.F, 0) {
		return false
	}

	return errors.Is(err, optimize.ErrNoProgress) || errors.Is(err, optimize.ErrLinesearcherFailure)
}

func (m *LogisticRegression) PredictProba(x []float64) (float64, float64) {
	if m.weights == nil || len(x) != len(m.weights) {
		return math.NaN(), math.NaN()
	}

	p1 := sigmoid(floats.Dot(m.weights, scale(x, m.mean, m.std)) + m.intercept)

	return 1 - p1, p1
}

func (m *LogisticRegression) Fitted() bool {
	return m.weights != nil
}

func (m *LogisticRegression) Coefficients() []float64 {
	return append([]float64(nil), m.weights...)
}

func (m *LogisticRegression) Intercept() float64 {
	return m.intercept
}

// Status is the optimizer termination status of the last fit.
func (m *LogisticRegression) Status() optimize.Status {
	return m.status
}

func standardScale(X [][]float64, nFeatures int) ([]float64, []float64) {
	mean := make([]float64, nFeatures)
	std := make([]float64, nFeatures)
	column := make([]float64, len(X))

	for j := range nFeatures {
		for i, row := range X {
			column[i] = row[j]
		}

		mean[j], std[j] = stat.MeanStdDev(column, nil)

		// Constant columns and single rows are only centred.
		if std[j] == 0 || math.IsNaN(std[j]) {
			std[j] = 1
		}
	}

	return mean, std
}

func scale(x, mean, std []float64) []float64 {
	z := make([]float64, len(x))

	for j, v := range x {
		z[j] = (v - mean[j]) / std[j]
	}

	return z
}

func sigmoid(t float64) float64 {
	if t >= 0 {
		return 1 / (1 + math.Exp(-t))
	}

	e := math.Exp(t)

	return e / (1 + e)
}

// softplus is log(1+exp(t)) without overflow.
func softplus(t float64) float64 {
	if t > 0 {
		return t + math.Log1p(math.Exp(-t))
	}

	return math.Log1p(math.Exp(t))
}
