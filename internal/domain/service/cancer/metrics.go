package cancer

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"cancer_api/internal/domain/value"
)

const metricsNamespace = "cancer"

// Metrics is safe to use as a nil pointer, which records nothing.
type Metrics struct {
	predictions      *prometheus.CounterVec
	cacheHits        prometheus.Counter
	recordFailures   prometheus.Counter
	trainingDuration prometheus.Gauge
	datasetSize      prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		predictions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "predictions_total",
				Help:      "Served predictions by most likely diagnosis",
			},
			[]string{"diagnosis"},
		),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "prediction_cache_hits_total",
			Help:      "Predictions answered from the memo cache",
		}),
		recordFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "prediction_record_failures_total",
			Help:      "Predictions that could not be handed to the audit queue",
		}),
		trainingDuration: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "model_training_duration_seconds",
			Help:      "Time spent loading the dataset and fitting the model",
		}),
		datasetSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "model_dataset_size",
			Help:      "Number of samples the model was fitted on",
		}),
	}
}

func (m *Metrics) observePrediction(diagnosis value.Diagnosis, cached bool) {
	if m == nil {
		return
	}

	m.predictions.WithLabelValues(diagnosis.String()).Inc()

	if cached {
		m.cacheHits.Inc()
	}
}

func (m *Metrics) observeRecordFailure() {
	if m == nil {
		return
	}

	m.recordFailures.Inc()
}

func (m *Metrics) observeTraining(datasetSize int, duration time.Duration) {
	if m == nil {
		return
	}

	m.datasetSize.Set(float64(datasetSize))
	m.trainingDuration.Set(duration.Seconds())
}
