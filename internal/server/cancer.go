package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/xid"
	"github.com/samber/lo"

	"cancer_api/internal/domain/entity"
	"cancer_api/pkg/httpx/reply"
	"cancer_api/pkg/httpx/req"
	"cancer_api/pkg/rest"
)

const (
	defaultPredictionsLimit = 20
	maxPredictionsLimit     = 100
)

type cancerService interface {
	Predict(ctx context.Context, cell entity.Cell) (entity.Prediction, error)
	FeatureWeights(ctx context.Context) (entity.FeatureWeights, error)
	Info(ctx context.Context) (entity.ModelInfo, error)
	Predictions(ctx context.Context, limit int) ([]entity.PredictionRecord, error)
	Prediction(ctx context.Context, id string) (entity.PredictionRecord, error)
}

type CancerServer struct {
	cancerService cancerService
}

func NewCancerServer(cancerService cancerService) CancerServer {
	return CancerServer{
		cancerService: cancerService,
	}
}

func (s CancerServer) postPredict(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.Cell

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	prediction, err := s.cancerService.Predict(ctx, newDomainCell(request))
	if err != nil {
		return fmt.Errorf("cancerService.Predict: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPrediction(prediction))

	return nil
}

func (s CancerServer) getWeights(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	weights, err := s.cancerService.FeatureWeights(ctx)
	if err != nil {
		return fmt.Errorf("cancerService.FeatureWeights: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTFeatureWeights(weights))

	return nil
}

func (s CancerServer) getModel(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	info, err := s.cancerService.Info(ctx)
	if err != nil {
		return fmt.Errorf("cancerService.Info: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTModelInfo(info))

	return nil
}

func (s CancerServer) getPredictions(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	limit, err := req.QueryInt(r, "limit", defaultPredictionsLimit, 1, maxPredictionsLimit)
	if err != nil {
		return fmt.Errorf("req.QueryInt: %w", err)
	}

	records, err := s.cancerService.Predictions(ctx, limit)
	if err != nil {
		return fmt.Errorf("cancerService.Predictions: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.PredictionRecords{
		Items: lo.Map(records, func(record entity.PredictionRecord, _ int) rest.PredictionRecord {
			return newRESTPredictionRecord(record)
		}),
	})

	return nil
}

func (s CancerServer) getPrediction(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if _, err := xid.FromString(id); err != nil {
		return errInvalidID(id)
	}

	record, err := s.cancerService.Prediction(ctx, id)
	if err != nil {
		return fmt.Errorf("cancerService.Prediction: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPredictionRecord(record))

	return nil
}
