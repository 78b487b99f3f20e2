package form

import (
	"errors"
	"testing"

	"HousePrice/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() models.FormInput {
	return models.FormInput{Bedrooms: "3", Bathrooms: "2", SqftLiving: "2000", Floors: "2", Age: "10"}
}

func with(field models.Field, value string) models.FormInput {
	in := validInput()
	_ = in.Set(field, value)
	return in
}

func TestValidate_Valid(t *testing.T) {
	v := NewValidator()
	f, err := v.Validate(validInput())
	require.NoError(t, err)
	assert.Equal(t, models.Features{Bedrooms: 3, Bathrooms: 2, SqftLiving: 2000, Floors: 2, Age: 10}, f)
	assert.Empty(t, v.Message(validInput()))
}

func TestValidate_InclusiveBounds(t *testing.T) {
	v := NewValidator()
	lows := models.FormInput{Bedrooms: "1", Bathrooms: "0.5", SqftLiving: "100", Floors: "1", Age: "0"}
	highs := models.FormInput{Bedrooms: "10", Bathrooms: "10", SqftLiving: "20000", Floors: "5", Age: "200"}
	assert.Empty(t, v.Message(lows))
	assert.Empty(t, v.Message(highs))
}

func TestValidate_EachFieldOutOfRange(t *testing.T) {
	v := NewValidator()
	cases := []struct {
		field models.Field
		value string
		want  string
	}{
		{models.FieldBedrooms, "0", "Bedrooms must be between 1 and 10"},
		{models.FieldBedrooms, "11", "Bedrooms must be between 1 and 10"},
		{models.FieldBathrooms, "0.4", "Bathrooms must be between 0.5 and 10"},
		{models.FieldBathrooms, "10.5", "Bathrooms must be between 0.5 and 10"},
		{models.FieldSqftLiving, "99", "Square footage must be between 100 and 20,000"},
		{models.FieldSqftLiving, "20001", "Square footage must be between 100 and 20,000"},
		{models.FieldFloors, "0.5", "Floors must be between 1 and 5"},
		{models.FieldFloors, "6", "Floors must be between 1 and 5"},
		{models.FieldAge, "-1", "Age must be between 0 and 200 years"},
		{models.FieldAge, "201", "Age must be between 0 and 200 years"},
	}
	for _, tc := range cases {
		t.Run(string(tc.field)+"="+tc.value, func(t *testing.T) {
			_, err := v.Validate(with(tc.field, tc.value))
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Field)
			assert.Equal(t, tc.want, verr.Message)
		})
	}
}

func TestValidate_FirstFailureWins(t *testing.T) {
	v := NewValidator()
	in := models.FormInput{Bedrooms: "3", Bathrooms: "0", SqftLiving: "5", Floors: "9", Age: "999"}
	assert.Equal(t, "Bathrooms must be between 0.5 and 10", v.Message(in))

	in.Bathrooms = "2"
	assert.Equal(t, "Square footage must be between 100 and 20,000", v.Message(in))

	in.SqftLiving = "1500"
	assert.Equal(t, "Floors must be between 1 and 5", v.Message(in))

	in.Floors = "1"
	assert.Equal(t, "Age must be between 0 and 200 years", v.Message(in))
}

func TestValidate_EmptyDominates(t *testing.T) {
	v := NewValidator()
	for _, field := range models.Fields {
		in := models.FormInput{Bedrooms: "99", Bathrooms: "99", SqftLiving: "1", Floors: "99", Age: "-5"}
		_ = in.Set(field, "")
		assert.Equal(t, MsgFillAllFields, v.Message(in), string(field))
	}
	assert.Equal(t, MsgFillAllFields, v.Message(with(models.FieldAge, "   ")))
	assert.Equal(t, MsgFillAllFields, v.Message(models.FormInput{}))
}

func TestValidate_NonNumeric(t *testing.T) {
	v := NewValidator()
	assert.Equal(t, "Floors must be a valid number", v.Message(with(models.FieldFloors, "two")))
	assert.Equal(t, "Bedrooms must be a valid number", v.Message(with(models.FieldBedrooms, "NaN")))
	assert.Equal(t, "Age must be a valid number", v.Message(with(models.FieldAge, "Inf")))

	// An earlier out-of-range field is still reported first.
	in := with(models.FieldBedrooms, "0")
	in.Floors = "two"
	assert.Equal(t, "Bedrooms must be between 1 and 10", v.Message(in))
}

func TestValidate_TrimsWhitespace(t *testing.T) {
	v := NewValidator()
	f, err := v.Validate(with(models.FieldSqftLiving, " 1850.5 "))
	require.NoError(t, err)
	assert.Equal(t, 1850.5, f.SqftLiving)
}

func TestValidateFeatures(t *testing.T) {
	v := NewValidator()
	assert.Nil(t, v.ValidateFeatures(models.Features{Bedrooms: 2, Bathrooms: 1, SqftLiving: 900, Floors: 1, Age: 0}))

	verr := v.ValidateFeatures(models.Features{Bedrooms: 2, Bathrooms: 1, SqftLiving: 900, Floors: 7, Age: 300})
	require.NotNil(t, verr)
	assert.Equal(t, models.FieldFloors, verr.Field)
}
