package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"cancer_api/internal/domain"
	"cancer_api/internal/domain/entity"
	"cancer_api/pkg/apperr"
	"cancer_api/pkg/errcodes"
)

type PredictionRepository struct {
	db *sqlx.DB
}

func NewPredictionRepository(db *sqlx.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

// Save stores record once; a redelivered record with a known id is ignored.
func (r *PredictionRepository) Save(ctx context.Context, record entity.PredictionRecord) error {
	query := `
		INSERT INTO predictions (
			id, perimeter_mean, radius_mean, texture_mean, area_mean,
			smoothness_mean, concavity_mean, symmetry_mean,
			malignant, benign, trace_id, created_at
		) VALUES (
			:id, :perimeter_mean, :radius_mean, :texture_mean, :area_mean,
			:smoothness_mean, :concavity_mean, :symmetry_mean,
			:malignant, :benign, :trace_id, :created_at
		)
		ON CONFLICT (id) DO NOTHING`

	if _, err := r.db.NamedExecContext(ctx, query, fromPredictionRecord(record)); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to save prediction")
	}

	return nil
}

// List returns the newest records first.
func (r *PredictionRepository) List(ctx context.Context, limit int) ([]entity.PredictionRecord, error) {
	query := r.db.Rebind(`
		SELECT id, perimeter_mean, radius_mean, texture_mean, area_mean,
			smoothness_mean, concavity_mean, symmetry_mean,
			malignant, benign, trace_id, created_at
		FROM predictions
		ORDER BY created_at DESC, id DESC
		LIMIT ?`)

	var rows []predictionSchema
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list predictions")
	}

	return lo.Map(rows, func(row predictionSchema, _ int) entity.PredictionRecord {
		return row.toDomain()
	}), nil
}

func (r *PredictionRepository) Get(ctx context.Context, id string) (entity.PredictionRecord, error) {
	query := r.db.Rebind(`
		SELECT id, perimeter_mean, radius_mean, texture_mean, area_mean,
			smoothness_mean, concavity_mean, symmetry_mean,
			malignant, benign, trace_id, created_at
		FROM predictions
		WHERE id = ?`)

	var row predictionSchema
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.PredictionRecord{}, apperr.NewNotFoundError(
				"prediction not found",
				apperr.WithCode(errcodes.PredictionNotFound),
				apperr.WithDescription("Prediction not found"),
			)
		}

		return entity.PredictionRecord{}, domain.WrapError(err, errcodes.InternalServerError, "failed to get prediction")
	}

	return row.toDomain(), nil
}
