package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"cancer_api/internal/application"
	"cancer_api/internal/config"
	"cancer_api/internal/domain/service/cancer"
	"cancer_api/internal/infrastructure/dataset"
	"cancer_api/internal/infrastructure/persistence"
	"cancer_api/pkg/logx"
)

func newGenerateDataCommand(a *app) *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "generate-data",
		Short: "Load the CSV dataset into postgres and check that it trains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if a.cfg.Postgres.DSN == "" {
				return fmt.Errorf("generate-data: %w", config.ErrPostgresRequired)
			}

			if csvPath == "" {
				csvPath = a.cfg.Model.DatasetPath
			}

			ds, err := dataset.NewCSVSource(csvPath).Load(ctx)
			if err != nil {
				return fmt.Errorf("csvSource.Load: %w", err)
			}

			pg := application.NewPostgres(a.cfg.Postgres)
			defer pg.Close(ctx)

			db, err := pg.Connect(ctx)
			if err != nil {
				return fmt.Errorf("pg.Connect: %w", err)
			}

			if err = persistence.Migrate(ctx, db); err != nil {
				return fmt.Errorf("persistence.Migrate: %w", err)
			}

			samples := persistence.NewSampleRepository(db)
			if err = samples.ReplaceAll(ctx, ds); err != nil {
				return fmt.Errorf("samples.ReplaceAll: %w", err)
			}

			stored, err := samples.Load(ctx)
			if err != nil {
				return fmt.Errorf("samples.Load: %w", err)
			}

			if _, err = cancer.Train(ctx, stored, application.NewTrainOptions(a.cfg.Model)); err != nil {
				return fmt.Errorf("cancer.Train: %w", err)
			}

			logger(ctx).Info(
				"dataset stored",
				slog.String(logx.FieldDatasetSource, csvPath),
				slog.Int(logx.FieldDatasetSize, stored.Len()),
			)

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "stored %d samples from %s\n", stored.Len(), csvPath)

			return err //nolint:wrapcheck
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "dataset file, defaults to MODEL_DATASET_PATH")

	return cmd
}
