package form

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"HousePrice/internal/domain/models"
	"HousePrice/pkg/util"

	"github.com/go-playground/validator/v10"
)

// MsgFillAllFields is reported when any attribute is left blank.
const MsgFillAllFields = "Please fill in all fields"

var labels = map[models.Field]string{
	models.FieldBedrooms:   "Bedrooms",
	models.FieldBathrooms:  "Bathrooms",
	models.FieldSqftLiving: "Square footage",
	models.FieldFloors:     "Floors",
	models.FieldAge:        "Age",
}

var rangeMessages = map[models.Field]string{
	models.FieldBedrooms:   "Bedrooms must be between 1 and 10",
	models.FieldBathrooms:  "Bathrooms must be between 0.5 and 10",
	models.FieldSqftLiving: "Square footage must be between 100 and 20,000",
	models.FieldFloors:     "Floors must be between 1 and 5",
	models.FieldAge:        "Age must be between 0 and 200 years",
}

// Label returns the human name of field.
func Label(field models.Field) string {
	return labels[field]
}

// RangeMessage returns the message shown when field is out of bounds.
func RangeMessage(field models.Field) string {
	return rangeMessages[field]
}

// ValidationError is the first rule a FormInput broke.
type ValidationError struct {
	Field   models.Field // empty for the fill-in-all-fields rule
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validator checks presence, numeric syntax and range of every attribute.
type Validator struct {
	v *validator.Validate
}

// NewValidator builds a Validator whose range rules come from the
// validate tags on models.Features.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return &Validator{v: v}
}

// Validate converts in to Features. The error, when non-nil, is a
// *ValidationError naming the first failing rule in field order.
func (v *Validator) Validate(in models.FormInput) (models.Features, error) {
	for _, field := range models.Fields {
		if strings.TrimSpace(in.Get(field)) == "" {
			return models.Features{}, &ValidationError{Message: MsgFillAllFields}
		}
	}

	var f models.Features
	unparsed := make(map[models.Field]bool)
	for _, field := range models.Fields {
		n, err := util.ParseFinite(in.Get(field))
		if err != nil {
			unparsed[field] = true
			continue
		}
		setFeature(&f, field, n)
	}

	outOfRange := make(map[models.Field]bool)
	if err := v.v.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return models.Features{}, fmt.Errorf("validate features: %w", err)
		}
		for _, fe := range verrs {
			outOfRange[models.Field(fe.Field())] = true
		}
	}

	for _, field := range models.Fields {
		switch {
		case unparsed[field]:
			return models.Features{}, &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("%s must be a valid number", labels[field]),
			}
		case outOfRange[field]:
			return models.Features{}, &ValidationError{Field: field, Message: rangeMessages[field]}
		}
	}
	return f, nil
}

// Message returns "" for valid input, else the first failing rule's message.
func (v *Validator) Message(in models.FormInput) string {
	if _, err := v.Validate(in); err != nil {
		return err.Error()
	}
	return ""
}

// ValidateFeatures applies only the range rules to an already numeric record.
func (v *Validator) ValidateFeatures(f models.Features) *ValidationError {
	err := v.v.Struct(f)
	if err == nil {
		return nil
	}
	failed := make(map[models.Field]bool)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			failed[models.Field(fe.Field())] = true
		}
	}
	for _, field := range models.Fields {
		if failed[field] {
			return &ValidationError{Field: field, Message: rangeMessages[field]}
		}
	}
	return &ValidationError{Message: err.Error()}
}

func setFeature(f *models.Features, field models.Field, n float64) {
	switch field {
	case models.FieldBedrooms:
		f.Bedrooms = n
	case models.FieldBathrooms:
		f.Bathrooms = n
	case models.FieldSqftLiving:
		f.SqftLiving = n
	case models.FieldFloors:
		f.Floors = n
	case models.FieldAge:
		f.Age = n
	}
}
