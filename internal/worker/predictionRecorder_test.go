package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"cancer_api/internal/domain/entity"
	"cancer_api/internal/infrastructure/queue"
	"cancer_api/internal/worker"
)

type saverFunc func(ctx context.Context, record entity.PredictionRecord) error

func (f saverFunc) Save(ctx context.Context, record entity.PredictionRecord) error {
	return f(ctx, record)
}

func TestPredictionRecorder(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	record := entity.PredictionRecord{
		ID:         "cq1l5s2v4kbs73b0c8fg",
		Cell:       entity.Cell{RadiusMean: 21},
		Prediction: entity.Prediction{Malignant: 0.4, Benign: 0.6},
		TraceID:    "trace",
		CreatedAt:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	task, err := queue.NewPredictionTask(record)
	rq.NoError(err)

	var saved []entity.PredictionRecord

	recorder := worker.NewPredictionRecorder(saverFunc(func(_ context.Context, r entity.PredictionRecord) error {
		saved = append(saved, r)
		return nil
	}))

	rq.NoError(recorder.ProcessTask(ctx, task))
	rq.Equal([]entity.PredictionRecord{record}, saved)

	err = recorder.ProcessTask(ctx, asynq.NewTask(queue.TypePredictionRecord, []byte("nope")))
	rq.ErrorIs(err, asynq.SkipRetry)
	rq.Len(saved, 1)

	boom := errors.New("db down")
	failing := worker.NewPredictionRecorder(saverFunc(func(context.Context, entity.PredictionRecord) error {
		return boom
	}))

	err = failing.ProcessTask(ctx, task)
	rq.ErrorIs(err, boom)
	rq.NotErrorIs(err, asynq.SkipRetry)
}
