package persistence

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"cancer_api/internal/domain"
	"cancer_api/internal/domain/entity"
	"cancer_api/pkg/errcodes"
	"cancer_api/pkg/lox"
)

const insertBatchSize = 500

// SampleRepository keeps the training dataset in cancer_samples and serves
// it as a dataset source.
type SampleRepository struct {
	db *sqlx.DB
}

func NewSampleRepository(db *sqlx.DB) *SampleRepository {
	return &SampleRepository{db: db}
}

func (r *SampleRepository) Name() string {
	return "postgres:cancer_samples"
}

// ReplaceAll swaps the stored dataset for ds in one transaction.
func (r *SampleRepository) ReplaceAll(ctx context.Context, ds entity.Dataset) error {
	rows := make([]sampleSchema, len(ds.Samples))
	for i, s := range ds.Samples {
		rows[i] = fromSample(i+1, s)
	}

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM cancer_samples`); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to clear samples")
		}

		query := `
			INSERT INTO cancer_samples (
				position, diagnosis, perimeter_mean, radius_mean, texture_mean,
				area_mean, smoothness_mean, concavity_mean, symmetry_mean
			) VALUES (
				:position, :diagnosis, :perimeter_mean, :radius_mean, :texture_mean,
				:area_mean, :smoothness_mean, :concavity_mean, :symmetry_mean
			)`

		for start := 0; start < len(rows); start += insertBatchSize {
			batch := rows[start:min(start+insertBatchSize, len(rows))]

			if _, err := tx.NamedExecContext(ctx, query, batch); err != nil {
				return domain.WrapError(err, errcodes.InternalServerError,
					fmt.Sprintf("failed to insert samples from %d", start))
			}
		}

		return nil
	})
}

func (r *SampleRepository) Load(ctx context.Context) (entity.Dataset, error) {
	query := `
		SELECT position, diagnosis, perimeter_mean, radius_mean, texture_mean,
			area_mean, smoothness_mean, concavity_mean, symmetry_mean
		FROM cancer_samples
		ORDER BY position`

	var rows []sampleSchema
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return entity.Dataset{}, domain.WrapError(err, errcodes.InternalServerError, "failed to load samples")
	}

	if len(rows) == 0 {
		return entity.Dataset{}, domain.NewError(errcodes.DatasetEmpty, "cancer_samples is empty")
	}

	samples, err := lox.MapErr(rows, sampleSchema.toDomain)
	if err != nil {
		return entity.Dataset{}, domain.WrapError(err, errcodes.DatasetInvalid, "failed to decode samples")
	}

	return entity.Dataset{Samples: samples}, nil
}

func (r *SampleRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM cancer_samples`); err != nil {
		return 0, domain.WrapError(err, errcodes.InternalServerError, "failed to count samples")
	}

	return count, nil
}
