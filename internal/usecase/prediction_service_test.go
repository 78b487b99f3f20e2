package usecase

import (
	"context"
	"errors"
	"testing"

	"HousePrice/internal/domain/models"
	"HousePrice/internal/form"
	"HousePrice/internal/services/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticModels struct {
	m   *pricing.LinearModel
	err error
}

func (s staticModels) Model() (*pricing.LinearModel, error) { return s.m, s.err }

func num(v float64) *models.Numeric {
	n := models.Numeric(v)
	return &n
}

func request(bed, bath, sqft, floors, age float64) models.PredictRequest {
	return models.PredictRequest{
		Bedrooms:   num(bed),
		Bathrooms:  num(bath),
		SqftLiving: num(sqft),
		Floors:     num(floors),
		Age:        num(age),
	}
}

func referenceService() *PredictionService {
	m := pricing.NewLinearModel(pricing.ReferenceCoefficients, pricing.ServiceFloor, "reference")
	return NewPredictionService(staticModels{m: m}, form.NewValidator(), nil, nil)
}

func TestPredictionService_Predict(t *testing.T) {
	resp, err := referenceService().Predict(context.Background(), request(3, 2, 2000, 2, 10))
	require.NoError(t, err)

	assert.Equal(t, 585000.0, resp.PredictedPrice)
	assert.Equal(t, "$585,000.00", resp.FormattedPrice)
	assert.Equal(t, models.Features{Bedrooms: 3, Bathrooms: 2, SqftLiving: 2000, Floors: 2, Age: 10}, resp.InputFeatures)
}

func TestPredictionService_ServiceFloor(t *testing.T) {
	// 15000 + 10000 + 15000 + 10000 - 400000 + 200000 is negative
	resp, err := referenceService().Predict(context.Background(), request(1, 0.5, 100, 1, 200))
	require.NoError(t, err)
	assert.Equal(t, pricing.ServiceFloor, resp.PredictedPrice)
	assert.Equal(t, "$50,000.00", resp.FormattedPrice)
}

func TestPredictionService_RangeError(t *testing.T) {
	_, err := referenceService().Predict(context.Background(), request(3, 2, 2000, 6, 10))

	var verr *form.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Floors must be between 1 and 5", verr.Message)
}

func TestPredictionService_ModelMissing(t *testing.T) {
	missing := errors.New("model not loaded")
	svc := NewPredictionService(staticModels{err: missing}, form.NewValidator(), nil, nil)

	_, err := svc.Predict(context.Background(), request(3, 2, 2000, 2, 10))
	assert.ErrorIs(t, err, missing)

	_, err = svc.Info()
	assert.ErrorIs(t, err, missing)
}

func TestPredictionService_Info(t *testing.T) {
	info, err := referenceService().Info()
	require.NoError(t, err)
	assert.Equal(t, "Linear Regression", info.ModelType)
	assert.Equal(t, models.Fields, info.Features)
	assert.Len(t, info.FeatureDescriptions, 5)
}
