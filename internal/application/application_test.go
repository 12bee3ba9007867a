package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"cancer_api/internal/application"
	"cancer_api/internal/config"
	"cancer_api/internal/domain/service/cancer"
)

func TestNewDatasetSource(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	cfg, err := config.Parse(map[string]string{"MODEL_DATASET_PATH": "testdata/cancer.csv"})
	rq.NoError(err)

	pg := application.NewPostgres(cfg.Postgres)

	source, err := application.NewDatasetSource(ctx, cfg, pg)
	rq.NoError(err)
	rq.Equal("csv:testdata/cancer.csv", source.Name())

	cfg.Model.DatasetSource = "s3"

	_, err = application.NewDatasetSource(ctx, cfg, pg)
	rq.ErrorIs(err, config.ErrUnknownDatasetSource)
}

func TestNewTrainOptions(t *testing.T) {
	rq := require.New(t)

	cfg, err := config.Parse(map[string]string{
		"MODEL_MAX_ITERATIONS": "250",
		"MODEL_TREE_MAX_DEPTH": "4",
		"MODEL_TEST_RATIO":     "0.3",
		"MODEL_SEED":           "7",
	})
	rq.NoError(err)

	rq.Equal(cancer.TrainOptions{
		MaxIterations: 250,
		TreeMaxDepth:  4,
		TestRatio:     0.3,
		Seed:          7,
	}, application.NewTrainOptions(cfg.Model))
}
