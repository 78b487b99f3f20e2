package service

import (
	"context"

	"HousePrice/internal/domain/models"
)

// PriceModel turns validated features into a price.
type PriceModel interface {
	Estimate(f models.Features) float64
	Info() models.ModelInfo
}

// RemotePredictor is the prediction service as seen by the form.
type RemotePredictor interface {
	// Health reports nil when the service answered its liveness check with 2xx.
	Health(ctx context.Context) error
	// Predict posts the raw form input and returns the service's result verbatim.
	Predict(ctx context.Context, in models.FormInput) (models.PredictionResult, error)
}

// Metrics records prediction outcomes.
type Metrics interface {
	RecordPrediction(source models.Source, price float64)
	RecordFailure(kind string)
	RecordLatency(op string, seconds float64)
	RecordLiveness(live bool)
}
