package queue_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"cancer_api/internal/domain/entity"
	"cancer_api/internal/infrastructure/queue"
)

type enqueuerFunc func(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)

func (f enqueuerFunc) EnqueueContext(
	ctx context.Context,
	task *asynq.Task,
	opts ...asynq.Option,
) (*asynq.TaskInfo, error) {
	return f(ctx, task, opts...)
}

func sampleRecord() entity.PredictionRecord {
	return entity.PredictionRecord{
		ID: "cq1l5s2v4kbs73b0c8fg",
		Cell: entity.Cell{
			PerimeterMean:  123,
			RadiusMean:     21,
			TextureMean:    20,
			AreaMean:       1020,
			SmoothnessMean: 0.1,
			ConcavityMean:  0.2,
			SymmetryMean:   0.25,
		},
		Prediction: entity.Prediction{Malignant: 0.9, Benign: 0.1},
		TraceID:    "trace",
		CreatedAt:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPredictionTask(t *testing.T) {
	rq := require.New(t)

	task, err := queue.NewPredictionTask(sampleRecord())
	rq.NoError(err)
	rq.Equal(queue.TypePredictionRecord, task.Type())

	record, err := queue.ParsePredictionTask(task)
	rq.NoError(err)
	rq.Equal(sampleRecord(), record)
}

func TestParsePredictionTaskErrors(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name string
		task *asynq.Task
	}{
		{name: "Wrong type", task: asynq.NewTask("other", []byte(`{"id":"x"}`))},
		{name: "Broken payload", task: asynq.NewTask(queue.TypePredictionRecord, []byte(`{`))},
		{name: "Missing id", task: asynq.NewTask(queue.TypePredictionRecord, []byte(`{"malignant":1}`))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			_, err := queue.ParsePredictionTask(tc.task)
			rq.Error(err)
		})
	}
}

func TestPublisherRecord(t *testing.T) {
	rq := require.New(t)

	var got []*asynq.Task

	publisher := queue.NewPublisher(enqueuerFunc(func(
		_ context.Context,
		task *asynq.Task,
		opts ...asynq.Option,
	) (*asynq.TaskInfo, error) {
		got = append(got, task)

		info := &asynq.TaskInfo{Type: task.Type()}

		for _, opt := range opts {
			switch opt.Type() {
			case asynq.QueueOpt:
				info.Queue = opt.Value().(string) //nolint:forcetypeassert
			case asynq.TaskIDOpt:
				info.ID = opt.Value().(string) //nolint:forcetypeassert
			case asynq.MaxRetryOpt:
				info.MaxRetry = opt.Value().(int) //nolint:forcetypeassert
			}
		}

		rq.Equal("predictions", info.Queue)
		rq.Equal(sampleRecord().ID, info.ID)
		rq.Equal(3, info.MaxRetry)

		return info, nil
	}), "predictions").WithMaxRetry(3)

	rq.NoError(publisher.Record(context.Background(), sampleRecord()))
	rq.Len(got, 1)
}

func TestPublisherRecordErrors(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	conflict := queue.NewPublisher(enqueuerFunc(func(
		context.Context, *asynq.Task, ...asynq.Option,
	) (*asynq.TaskInfo, error) {
		return nil, asynq.ErrTaskIDConflict
	}), "predictions")
	rq.NoError(conflict.Record(ctx, sampleRecord()))

	boom := errors.New("redis down")
	failing := queue.NewPublisher(enqueuerFunc(func(
		context.Context, *asynq.Task, ...asynq.Option,
	) (*asynq.TaskInfo, error) {
		return nil, boom
	}), "predictions")
	rq.ErrorIs(failing.Record(ctx, sampleRecord()), boom)
}
