package cancer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"cancer_api/internal/domain/entity"
	"cancer_api/pkg/apperr"
	"cancer_api/pkg/errcodes"
	"cancer_api/pkg/logx"
)

var ErrNotReady = errors.New("model is not trained yet")

type DatasetSource interface {
	Name() string
	Load(ctx context.Context) (entity.Dataset, error)
}

// Provider owns the process wide model. The first Instance call loads the
// dataset and trains; concurrent callers wait for it and everyone gets the
// same *Model or the same error. A failed load is never retried.
type Provider struct {
	source    DatasetSource
	opts      TrainOptions
	metrics   *Metrics
	once      sync.Once
	model     *Model
	err       error
	done      atomic.Bool
	trainings atomic.Int64
}

func NewProvider(source DatasetSource, opts TrainOptions, metrics *Metrics) *Provider {
	return &Provider{
		source:  source,
		opts:    opts,
		metrics: metrics,
	}
}

func (p *Provider) Instance(ctx context.Context) (*Model, error) {
	p.once.Do(func() {
		p.model, p.err = p.load(ctx)
		p.done.Store(true)
	})

	if p.err != nil {
		return nil, apperr.NewUnavailableErrorFromError(
			p.err,
			apperr.WithCode(errcodes.ModelUnavailable),
			apperr.WithDescription("Model is unavailable"),
		)
	}

	return p.model, nil
}

func (p *Provider) load(ctx context.Context) (*Model, error) {
	start := time.Now()

	logger(ctx).Info("loading dataset", slog.String(logx.FieldDatasetSource, p.source.Name()))

	ds, err := p.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("source.Load: %w", err)
	}

	p.trainings.Add(1)

	model, err := Train(ctx, ds, p.opts)
	if err != nil {
		return nil, fmt.Errorf("Train: %w", err)
	}

	p.metrics.observeTraining(ds.Len(), time.Since(start))

	return model, nil
}

// Trainings is the number of fits performed, 0 or 1.
func (p *Provider) Trainings() int {
	return int(p.trainings.Load())
}

// Ready reports whether a model is available without triggering a load.
func (p *Provider) Ready(context.Context) error {
	if !p.done.Load() {
		return ErrNotReady
	}

	return p.err
}
