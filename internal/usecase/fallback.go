package usecase

import (
	"HousePrice/internal/domain/models"
	domsvc "HousePrice/internal/domain/service"
	"HousePrice/internal/services/pricing"
)

// predictLocally is the offline path: the fallback model's estimate packaged
// in the same shape the service returns, echoing the submitted text.
func predictLocally(m domsvc.PriceModel, f models.Features, in models.FormInput) models.PredictionResult {
	if m == nil {
		m = pricing.Fallback()
	}
	return pricing.Result(m.Estimate(f), in)
}
