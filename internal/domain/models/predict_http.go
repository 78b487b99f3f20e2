package models

import (
	"bytes"
	"encoding/json"

	"HousePrice/pkg/util"
)

// Requests and responses of the prediction service HTTP API.

// Numeric decodes from a JSON number or a numeric JSON string.
type Numeric float64

func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}
	v, err := util.ParseFinite(string(data))
	if err != nil {
		return err
	}
	*n = Numeric(v)
	return nil
}

// PredictRequest is the body of POST /api/predict. Pointers distinguish a
// missing attribute from a zero one.
type PredictRequest struct {
	Bedrooms   *Numeric `json:"bedrooms" validate:"required"`
	Bathrooms  *Numeric `json:"bathrooms" validate:"required"`
	SqftLiving *Numeric `json:"sqft_living" validate:"required"`
	Floors     *Numeric `json:"floors" validate:"required"`
	Age        *Numeric `json:"age" validate:"required"`
}

// Features converts a request that passed the required checks.
func (r PredictRequest) Features() Features {
	return Features{
		Bedrooms:   deref(r.Bedrooms),
		Bathrooms:  deref(r.Bathrooms),
		SqftLiving: deref(r.SqftLiving),
		Floors:     deref(r.Floors),
		Age:        deref(r.Age),
	}
}

func deref(n *Numeric) float64 {
	if n == nil {
		return 0
	}
	return float64(*n)
}

// PredictResponse is the success body of POST /api/predict.
type PredictResponse struct {
	PredictedPrice float64  `json:"predicted_price"`
	FormattedPrice string   `json:"formatted_price"`
	InputFeatures  Features `json:"input_features"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ModelInfo is the body of GET /api/model-info.
type ModelInfo struct {
	ModelType           string           `json:"model_type"`
	Features            []Field          `json:"features"`
	FeatureDescriptions map[Field]string `json:"feature_descriptions"`
	Version             string           `json:"version,omitempty"`
}
