//go:build wireinject
// +build wireinject

package di

import (
	"HousePrice/internal/usecase"
	"HousePrice/pkg/config"
	"HousePrice/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires the form UI server.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Prediction paths
		ProvideRemotePredictor,
		ProvideFallbackModel,
		ProvideValidator,

		// Use cases
		ProvideEstimator,

		// HTTP
		ProvideFormHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}

// InitializePredictor wires the prediction service.
func InitializePredictor(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Model
		ProvideModelStore,
		ProvideModelProvider,
		ProvideValidator,

		// Rate limiting
		ProvideRedisClient,
		ProvideLimiter,

		// Use cases
		ProvidePredictionService,

		// HTTP
		ProvidePredictHandler,
		ProvidePredictorApp,
	)
	return &server.App{}, nil
}

// InitializeEstimator wires the form workflow for the terminal driver.
func InitializeEstimator(cfg *config.Config) (*usecase.Estimator, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideRemotePredictor,
		ProvideFallbackModel,
		ProvideValidator,
		ProvideEstimator,
	)
	return &usecase.Estimator{}, nil
}
