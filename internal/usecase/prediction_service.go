package usecase

import (
	"context"
	"fmt"
	"time"

	"HousePrice/internal/domain/models"
	domsvc "HousePrice/internal/domain/service"
	"HousePrice/internal/form"
	"HousePrice/internal/services/pricing"
	applogger "HousePrice/pkg/logger"
)

// ModelProvider hands out the currently loaded price model.
type ModelProvider interface {
	Model() (*pricing.LinearModel, error)
}

// PredictionService answers the prediction API: range checks, model
// evaluation and response shaping.
type PredictionService struct {
	models    ModelProvider
	validator *form.Validator
	metrics   domsvc.Metrics
	log       *applogger.Logger
}

func NewPredictionService(
	provider ModelProvider,
	validator *form.Validator,
	metrics domsvc.Metrics,
	log *applogger.Logger,
) *PredictionService {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if log == nil {
		log = applogger.Nop()
	}
	return &PredictionService{
		models:    provider,
		validator: validator,
		metrics:   metrics,
		log:       log.Component("prediction_service"),
	}
}

// Predict evaluates a request whose attributes are all present. A range
// failure is returned as *form.ValidationError.
func (s *PredictionService) Predict(ctx context.Context, req models.PredictRequest) (models.PredictResponse, error) {
	f := req.Features()
	if verr := s.validator.ValidateFeatures(f); verr != nil {
		s.metrics.RecordFailure("validation")
		return models.PredictResponse{}, verr
	}

	m, err := s.models.Model()
	if err != nil {
		s.metrics.RecordFailure("model")
		return models.PredictResponse{}, err
	}
	if err := ctx.Err(); err != nil {
		return models.PredictResponse{}, err
	}

	start := time.Now()
	price := m.Estimate(f)
	s.metrics.RecordLatency("model_estimate", time.Since(start).Seconds())
	s.metrics.RecordPrediction(models.SourceRemote, price)

	s.log.Debug("prediction",
		applogger.Float64("price", price),
		applogger.Any("features", f),
	)
	return models.PredictResponse{
		PredictedPrice: price,
		FormattedPrice: pricing.FormatUSD(price),
		InputFeatures:  f,
	}, nil
}

// Info describes the loaded model.
func (s *PredictionService) Info() (models.ModelInfo, error) {
	m, err := s.models.Model()
	if err != nil {
		return models.ModelInfo{}, fmt.Errorf("model info: %w", err)
	}
	return m.Info(), nil
}
