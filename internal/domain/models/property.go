package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field names one of the five property attributes, in wire form.
type Field string

const (
	FieldBedrooms   Field = "bedrooms"
	FieldBathrooms  Field = "bathrooms"
	FieldSqftLiving Field = "sqft_living"
	FieldFloors     Field = "floors"
	FieldAge        Field = "age"
)

// Fields lists the attributes in the fixed order used for validation,
// prompting and model coefficients.
var Fields = []Field{FieldBedrooms, FieldBathrooms, FieldSqftLiving, FieldFloors, FieldAge}

// Valid reports whether f is one of the five known attributes.
func (f Field) Valid() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

// FormInput is the raw text the user typed for each attribute.
type FormInput struct {
	Bedrooms   string `json:"bedrooms" form:"bedrooms"`
	Bathrooms  string `json:"bathrooms" form:"bathrooms"`
	SqftLiving string `json:"sqft_living" form:"sqft_living"`
	Floors     string `json:"floors" form:"floors"`
	Age        string `json:"age" form:"age"`
}

// Get returns the text held for field.
func (in FormInput) Get(field Field) string {
	switch field {
	case FieldBedrooms:
		return in.Bedrooms
	case FieldBathrooms:
		return in.Bathrooms
	case FieldSqftLiving:
		return in.SqftLiving
	case FieldFloors:
		return in.Floors
	case FieldAge:
		return in.Age
	}
	return ""
}

// Set replaces the text held for field. Unknown fields are an error.
func (in *FormInput) Set(field Field, value string) error {
	switch field {
	case FieldBedrooms:
		in.Bedrooms = value
	case FieldBathrooms:
		in.Bathrooms = value
	case FieldSqftLiving:
		in.SqftLiving = value
	case FieldFloors:
		in.Floors = value
	case FieldAge:
		in.Age = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

// UnmarshalJSON accepts both strings and bare numbers for every attribute,
// keeping numbers as their literal text. The prediction service echoes
// input_features as numbers while the form sends strings.
func (in *FormInput) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var out FormInput
	for _, field := range Fields {
		msg, ok := raw[string(field)]
		if !ok {
			continue
		}
		text, err := rawText(msg)
		if err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
		_ = out.Set(field, text)
	}
	*in = out
	return nil
}

func rawText(msg json.RawMessage) (string, error) {
	msg = bytes.TrimSpace(msg)
	switch {
	case len(msg) == 0, bytes.Equal(msg, []byte("null")):
		return "", nil
	case msg[0] == '"':
		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			return "", err
		}
		return s, nil
	default:
		var n json.Number
		if err := json.Unmarshal(msg, &n); err != nil {
			return "", fmt.Errorf("expected string or number, got %s", msg)
		}
		return n.String(), nil
	}
}

// Features is the numeric record produced once FormInput passes validation.
// The validate tags carry the inclusive accepted range of each attribute.
type Features struct {
	Bedrooms   float64 `json:"bedrooms" validate:"gte=1,lte=10"`
	Bathrooms  float64 `json:"bathrooms" validate:"gte=0.5,lte=10"`
	SqftLiving float64 `json:"sqft_living" validate:"gte=100,lte=20000"`
	Floors     float64 `json:"floors" validate:"gte=1,lte=5"`
	Age        float64 `json:"age" validate:"gte=0,lte=200"`
}

// Get returns the value held for field.
func (f Features) Get(field Field) float64 {
	switch field {
	case FieldBedrooms:
		return f.Bedrooms
	case FieldBathrooms:
		return f.Bathrooms
	case FieldSqftLiving:
		return f.SqftLiving
	case FieldFloors:
		return f.Floors
	case FieldAge:
		return f.Age
	}
	return 0
}

// Vector returns the values in Fields order.
func (f Features) Vector() []float64 {
	out := make([]float64, len(Fields))
	for i, field := range Fields {
		out[i] = f.Get(field)
	}
	return out
}

// PredictionResult is what the form displays after a successful submit.
type PredictionResult struct {
	PredictedPrice float64   `json:"predicted_price"`
	FormattedPrice string    `json:"formatted_price"`
	InputFeatures  FormInput `json:"input_features"`
}

// Source tells whether a prediction came from the remote service or the
// local fallback formula.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)
