// Package worker holds the background task handlers.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"cancer_api/internal/domain/entity"
	"cancer_api/internal/infrastructure/queue"
	"cancer_api/pkg/contextx"
	"cancer_api/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type PredictionSaver interface {
	Save(ctx context.Context, record entity.PredictionRecord) error
}

// PredictionRecorder stores queued prediction records.
type PredictionRecorder struct {
	repo PredictionSaver
}

func NewPredictionRecorder(repo PredictionSaver) *PredictionRecorder {
	return &PredictionRecorder{repo: repo}
}

// ProcessTask implements asynq.Handler. Undecodable payloads are not retried.
func (w *PredictionRecorder) ProcessTask(ctx context.Context, task *asynq.Task) error {
	record, err := queue.ParsePredictionTask(task)
	if err != nil {
		return fmt.Errorf("queue.ParsePredictionTask: %w: %w", err, asynq.SkipRetry)
	}

	ctx = contextx.WithLogger(ctx, logger(ctx).With(
		slog.String(logx.FieldPredictionID, record.ID),
		slog.String(logx.FieldTraceID, record.TraceID),
	))

	if err := w.repo.Save(ctx, record); err != nil {
		return fmt.Errorf("repo.Save: %w", err)
	}

	logger(ctx).Debug("prediction recorded")

	return nil
}
