package cancer

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/xid"

	"cancer_api/internal/domain/entity"
	"cancer_api/pkg/apperr"
	"cancer_api/pkg/contextx"
	"cancer_api/pkg/errcodes"
	"cancer_api/pkg/logx"
)

const cacheCleanupInterval = 10 * time.Minute

// Recorder receives every served prediction, typically to queue it for audit.
type Recorder interface {
	Record(ctx context.Context, record entity.PredictionRecord) error
}

type History interface {
	List(ctx context.Context, limit int) ([]entity.PredictionRecord, error)
	Get(ctx context.Context, id string) (entity.PredictionRecord, error)
}

type Service struct {
	provider *Provider
	metrics  *Metrics
	cache    *cache.Cache
	recorder Recorder
	history  History
	now      func() time.Time
}

func NewService(provider *Provider, metrics *Metrics) *Service {
	return &Service{
		provider: provider,
		metrics:  metrics,
		now:      time.Now,
	}
}

// WithPredictionCache memoises predictions of identical cells for ttl. A
// non-positive ttl disables the cache.
func (s *Service) WithPredictionCache(ttl time.Duration) *Service {
	if ttl > 0 {
		s.cache = cache.New(ttl, cacheCleanupInterval)
	} else {
		s.cache = nil
	}

	return s
}

func (s *Service) WithRecorder(recorder Recorder) *Service {
	s.recorder = recorder
	return s
}

func (s *Service) WithHistory(history History) *Service {
	s.history = history
	return s
}

func (s *Service) Predict(ctx context.Context, cell entity.Cell) (entity.Prediction, error) {
	if err := cell.Validate(); err != nil {
		return entity.Prediction{}, apperr.NewInvalidArgumentErrorFromError(
			err,
			apperr.WithCode(errcodes.InvalidCell),
			apperr.WithDescription(err.Error()),
		)
	}

	model, err := s.provider.Instance(ctx)
	if err != nil {
		return entity.Prediction{}, fmt.Errorf("provider.Instance: %w", err)
	}

	prediction, cached := s.predict(model, cell)

	s.metrics.observePrediction(prediction.Diagnosis(), cached)
	s.record(ctx, cell, prediction)

	return prediction, nil
}

func (s *Service) predict(model *Model, cell entity.Cell) (entity.Prediction, bool) {
	if s.cache == nil {
		return model.Predict(cell), false
	}

	key := cacheKey(cell)

	if v, ok := s.cache.Get(key); ok {
		if prediction, ok := v.(entity.Prediction); ok {
			return prediction, true
		}
	}

	prediction := model.Predict(cell)
	s.cache.SetDefault(key, prediction)

	return prediction, false
}

func cacheKey(cell entity.Cell) string {
	parts := make([]string, 0, len(cell.Vector()))

	for _, v := range cell.Vector() {
		parts = append(parts, strconv.FormatFloat(v, 'g', -1, 64))
	}

	return strings.Join(parts, "|")
}

// record never fails the request: the prediction is already computed.
func (s *Service) record(ctx context.Context, cell entity.Cell, prediction entity.Prediction) {
	if s.recorder == nil {
		return
	}

	traceID, _ := contextx.TraceIDFromContext(ctx) //nolint:errcheck

	record := entity.PredictionRecord{
		ID:         xid.New().String(),
		Cell:       cell,
		Prediction: prediction,
		TraceID:    traceID.String(),
		CreatedAt:  s.now().UTC(),
	}

	if err := s.recorder.Record(ctx, record); err != nil {
		s.metrics.observeRecordFailure()

		logger(ctx).Error(
			"recorder.Record",
			slog.String(logx.FieldPredictionID, record.ID),
			logx.Error(err),
		)
	}
}

func (s *Service) FeatureWeights(ctx context.Context) (entity.FeatureWeights, error) {
	model, err := s.provider.Instance(ctx)
	if err != nil {
		return nil, fmt.Errorf("provider.Instance: %w", err)
	}

	return model.FeatureWeights(), nil
}

func (s *Service) Info(ctx context.Context) (entity.ModelInfo, error) {
	model, err := s.provider.Instance(ctx)
	if err != nil {
		return entity.ModelInfo{}, fmt.Errorf("provider.Instance: %w", err)
	}

	return model.Info(), nil
}

func (s *Service) Predictions(ctx context.Context, limit int) ([]entity.PredictionRecord, error) {
	if s.history == nil {
		return nil, errHistoryDisabled()
	}

	records, err := s.history.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("history.List: %w", err)
	}

	return records, nil
}

func (s *Service) Prediction(ctx context.Context, id string) (entity.PredictionRecord, error) {
	if s.history == nil {
		return entity.PredictionRecord{}, errHistoryDisabled()
	}

	record, err := s.history.Get(ctx, id)
	if err != nil {
		return entity.PredictionRecord{}, fmt.Errorf("history.Get: %w", err)
	}

	return record, nil
}

func errHistoryDisabled() error {
	return apperr.NewNotFoundError(
		"prediction history is disabled",
		apperr.WithCode(errcodes.HistoryDisabled),
		apperr.WithDescription("Prediction history is disabled"),
	)
}
