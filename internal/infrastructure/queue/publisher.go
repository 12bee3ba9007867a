package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"cancer_api/internal/domain/entity"
	"cancer_api/pkg/contextx"
	"cancer_api/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Enqueuer is implemented by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Publisher queues prediction records for the audit worker.
type Publisher struct {
	client   Enqueuer
	queue    string
	maxRetry int
}

func NewPublisher(client Enqueuer, queue string) *Publisher {
	return &Publisher{
		client:   client,
		queue:    queue,
		maxRetry: 5, //nolint:mnd
	}
}

func (p *Publisher) WithMaxRetry(maxRetry int) *Publisher {
	p.maxRetry = maxRetry
	return p
}

// Record enqueues record with its id as the task id, so a record is queued
// at most once.
func (p *Publisher) Record(ctx context.Context, record entity.PredictionRecord) error {
	task, err := NewPredictionTask(record)
	if err != nil {
		return fmt.Errorf("NewPredictionTask: %w", err)
	}

	info, err := p.client.EnqueueContext(ctx, task,
		asynq.Queue(p.queue),
		asynq.TaskID(record.ID),
		asynq.MaxRetry(p.maxRetry),
	)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}

		return fmt.Errorf("client.EnqueueContext: %w", err)
	}

	logger(ctx).Debug(
		"prediction queued",
		slog.String(logx.FieldPredictionID, record.ID),
		slog.String(logx.FieldQueue, info.Queue),
	)

	return nil
}
