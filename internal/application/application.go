// Package application is the composition root of the cancer-api server.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"cancer_api/internal/config"
	"cancer_api/internal/domain/service/cancer"
	"cancer_api/internal/infrastructure/dataset"
	"cancer_api/internal/infrastructure/persistence"
	"cancer_api/internal/infrastructure/queue"
	"cancer_api/internal/server"
	"cancer_api/internal/worker"
	"cancer_api/pkg/application/connectors"
	"cancer_api/pkg/application/modules"
	"cancer_api/pkg/contextx"
	"cancer_api/pkg/logx"
	"cancer_api/pkg/middlewarex"
)

const metricsNamespace = "cancer_api"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Run trains the model, then serves until ctx is cancelled or a module fails.
func Run(ctx context.Context, cfg config.Config) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	pg := NewPostgres(cfg.Postgres)
	defer pg.Close(ctx)

	source, err := NewDatasetSource(ctx, cfg, pg)
	if err != nil {
		return fmt.Errorf("NewDatasetSource: %w", err)
	}

	cancerMetrics := cancer.NewMetrics(reg)
	provider := cancer.NewProvider(source, NewTrainOptions(cfg.Model), cancerMetrics)

	// train before accepting traffic
	if _, err = provider.Instance(ctx); err != nil {
		return fmt.Errorf("provider.Instance: %w", err)
	}

	svc := cancer.NewService(provider, cancerMetrics).
		WithPredictionCache(cfg.Model.PredictionCacheTTL)

	g, ctx := errgroup.WithContext(ctx)

	if cfg.Audit.Enabled {
		rd := &connectors.Redis{
			Address:            cfg.Redis.Address,
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}
		defer rd.Close(ctx)

		if err = wireAudit(ctx, g, cfg.Audit, svc, pg, rd); err != nil {
			return fmt.Errorf("wireAudit: %w", err)
		}
	}

	router := server.NewRouter(
		server.NewServer(server.NewCancerServer(svc)),
		server.RouterOptions{
			CORSAllowedOrigins:  cfg.HTTP.CORSAllowedOrigins,
			SensitiveDataMasker: logx.NewSensitiveDataMasker(cfg.HTTP.MaskedFields...),
			LogFieldMaxLen:      cfg.HTTP.LogFieldMaxLen,
			Metrics:             middlewarex.NewHTTPMetrics(reg, metricsNamespace),
		},
	)

	modules.HTTPServer{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, &http.Server{
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	})

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
		Ready:         provider.Ready,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.HTTP.MetricsListenAddress,
		Gatherer:      reg,
	}.Run(ctx, g)

	if err = g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func wireAudit(
	ctx context.Context,
	g *errgroup.Group,
	cfg config.Audit,
	svc *cancer.Service,
	pg *connectors.Postgres,
	rd *connectors.Redis,
) error {
	db, err := pg.Connect(ctx)
	if err != nil {
		return fmt.Errorf("pg.Connect: %w", err)
	}

	if err = persistence.Migrate(ctx, db); err != nil {
		return fmt.Errorf("persistence.Migrate: %w", err)
	}

	redisClient, err := rd.Connect(ctx)
	if err != nil {
		return fmt.Errorf("rd.Connect: %w", err)
	}

	predictions := persistence.NewPredictionRepository(db)

	// the client shares the redis pool, which rd closes
	publisher := queue.NewPublisher(asynq.NewClientFromRedisClient(redisClient), cfg.Queue).
		WithMaxRetry(cfg.MaxRetry)

	svc.WithRecorder(publisher).WithHistory(predictions)

	modules.AsynqServer{
		Redis:       redisClient,
		Concurrency: cfg.Concurrency,
	}.Run(ctx, g, modules.AsynqQueues{cfg.Queue: 1}, modules.AsynqHandler{
		Pattern: queue.TypePredictionRecord,
		Handle:  worker.NewPredictionRecorder(predictions).ProcessTask,
	})

	logger(ctx).Info("prediction audit enabled", slog.String(logx.FieldQueue, cfg.Queue))

	return nil
}

func NewPostgres(cfg config.Postgres) *connectors.Postgres {
	return &connectors.Postgres{
		DSN:             cfg.DSN,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}
}

func NewTrainOptions(cfg config.Model) cancer.TrainOptions {
	return cancer.TrainOptions{
		MaxIterations: cfg.MaxIterations,
		TreeMaxDepth:  cfg.TreeMaxDepth,
		TestRatio:     cfg.TestRatio,
		Seed:          cfg.Seed,
	}
}

// NewDatasetSource picks the configured training data. The postgres source
// connects pg and applies the schema.
func NewDatasetSource(ctx context.Context, cfg config.Config, pg *connectors.Postgres) (cancer.DatasetSource, error) {
	switch cfg.Model.DatasetSource {
	case config.DatasetSourceCSV:
		return dataset.NewCSVSource(cfg.Model.DatasetPath), nil
	case config.DatasetSourcePostgres:
		db, err := pg.Connect(ctx)
		if err != nil {
			return nil, fmt.Errorf("pg.Connect: %w", err)
		}

		if err = persistence.Migrate(ctx, db); err != nil {
			return nil, fmt.Errorf("persistence.Migrate: %w", err)
		}

		return persistence.NewSampleRepository(db), nil
	default:
		return nil, fmt.Errorf("%q: %w", cfg.Model.DatasetSource, config.ErrUnknownDatasetSource)
	}
}
