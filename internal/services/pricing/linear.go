package pricing

import (
	"math"

	"HousePrice/internal/domain/models"
	domsvc "HousePrice/internal/domain/service"
)

const (
	// FallbackFloor is the minimum price the local fallback estimate returns.
	FallbackFloor = 100000.0
	// ServiceFloor is the default minimum the prediction service returns.
	ServiceFloor = 50000.0
)

// Coefficients of a linear price model over the five attributes.
type Coefficients struct {
	Intercept  float64 `yaml:"intercept" json:"intercept"`
	Bedrooms   float64 `yaml:"bedrooms" json:"bedrooms"`
	Bathrooms  float64 `yaml:"bathrooms" json:"bathrooms"`
	SqftLiving float64 `yaml:"sqft_living" json:"sqft_living"`
	Floors     float64 `yaml:"floors" json:"floors"`
	Age        float64 `yaml:"age" json:"age"`
}

// ReferenceCoefficients is the fixed formula used when the service is down:
// 15000/bedroom, 20000/bathroom, 150/sqft, 10000/floor, -2000/year, base 200000.
var ReferenceCoefficients = Coefficients{
	Intercept:  200000,
	Bedrooms:   15000,
	Bathrooms:  20000,
	SqftLiving: 150,
	Floors:     10000,
	Age:        -2000,
}

// Raw evaluates the linear formula without any floor.
func (c Coefficients) Raw(f models.Features) float64 {
	return f.Bedrooms*c.Bedrooms +
		f.Bathrooms*c.Bathrooms +
		f.SqftLiving*c.SqftLiving +
		f.Floors*c.Floors +
		f.Age*c.Age +
		c.Intercept
}

// LinearModel is a floored linear price model.
type LinearModel struct {
	coef    Coefficients
	floor   float64
	version string
}

// NewLinearModel builds a model that never estimates below floor.
func NewLinearModel(coef Coefficients, floor float64, version string) *LinearModel {
	return &LinearModel{coef: coef, floor: floor, version: version}
}

// Fallback returns the model behind the form's offline estimate.
func Fallback() *LinearModel {
	return NewLinearModel(ReferenceCoefficients, FallbackFloor, "reference")
}

// Coefficients returns the model parameters.
func (m *LinearModel) Coefficients() Coefficients { return m.coef }

// Floor returns the minimum estimate.
func (m *LinearModel) Floor() float64 { return m.floor }

// Estimate returns max(raw, floor) rounded to cents.
func (m *LinearModel) Estimate(f models.Features) float64 {
	return RoundCents(math.Max(m.coef.Raw(f), m.floor))
}

// Info describes the model for GET /api/model-info.
func (m *LinearModel) Info() models.ModelInfo {
	return models.ModelInfo{
		ModelType: "Linear Regression",
		Features:  append([]models.Field(nil), models.Fields...),
		FeatureDescriptions: map[models.Field]string{
			models.FieldBedrooms:   "Number of bedrooms (1-10)",
			models.FieldBathrooms:  "Number of bathrooms (0.5-10)",
			models.FieldSqftLiving: "Living area in square feet (100-20,000)",
			models.FieldFloors:     "Number of floors (1-5)",
			models.FieldAge:        "Age of the house in years (0-200)",
		},
		Version: m.version,
	}
}

// Result packages an estimate the way the form displays it.
func Result(price float64, in models.FormInput) models.PredictionResult {
	return models.PredictionResult{
		PredictedPrice: price,
		FormattedPrice: FormatUSD(price),
		InputFeatures:  in,
	}
}

// RoundCents rounds v to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

var _ domsvc.PriceModel = (*LinearModel)(nil)
