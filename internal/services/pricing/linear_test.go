package pricing

import (
	"testing"

	"HousePrice/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestFallback_ReferenceExample(t *testing.T) {
	f := models.Features{Bedrooms: 3, Bathrooms: 2, SqftLiving: 2000, Floors: 2, Age: 10}

	assert.Equal(t, 585000.0, ReferenceCoefficients.Raw(f))
	price := Fallback().Estimate(f)
	assert.Equal(t, 585000.0, price)
	assert.Equal(t, "$585,000.00", FormatUSD(price))
}

func TestFallback_FloorBinds(t *testing.T) {
	f := models.Features{Bedrooms: 1, Bathrooms: 0.5, SqftLiving: 100, Floors: 1, Age: 200}

	assert.Less(t, ReferenceCoefficients.Raw(f), FallbackFloor)
	assert.Equal(t, FallbackFloor, Fallback().Estimate(f))
	assert.Equal(t, "$100,000.00", FormatUSD(Fallback().Estimate(f)))
}

func TestFallback_MonotonicInSqft(t *testing.T) {
	m := Fallback()
	base := models.Features{Bedrooms: 3, Bathrooms: 2, SqftLiving: 100, Floors: 2, Age: 10}
	prev := m.Estimate(base)
	for sqft := 200.0; sqft <= 20000; sqft += 700 {
		base.SqftLiving = sqft
		cur := m.Estimate(base)
		assert.Greater(t, cur, prev, "sqft=%v", sqft)
		prev = cur
	}
}

func TestFallback_DecreasingInAge(t *testing.T) {
	m := Fallback()
	base := models.Features{Bedrooms: 4, Bathrooms: 3, SqftLiving: 3000, Floors: 2, Age: 0}
	prev := m.Estimate(base)
	for age := 5.0; age <= 200; age += 5 {
		base.Age = age
		cur := m.Estimate(base)
		if cur == FallbackFloor {
			assert.LessOrEqual(t, cur, prev)
			break
		}
		assert.Less(t, cur, prev, "age=%v", age)
		prev = cur
	}
}

func TestFallback_NeverBelowFloor(t *testing.T) {
	m := Fallback()
	for _, bedrooms := range []float64{1, 5, 10} {
		for _, age := range []float64{0, 100, 200} {
			f := models.Features{Bedrooms: bedrooms, Bathrooms: 0.5, SqftLiving: 100, Floors: 1, Age: age}
			assert.GreaterOrEqual(t, m.Estimate(f), FallbackFloor)
		}
	}
}

func TestLinearModel_CustomFloorAndRounding(t *testing.T) {
	m := NewLinearModel(Coefficients{Intercept: 1000.004, SqftLiving: 1}, 50000, "t")
	assert.Equal(t, 50000.0, m.Estimate(models.Features{SqftLiving: 10}))
	assert.Equal(t, 61000.0, m.Estimate(models.Features{SqftLiving: 59999.996}))
}

func TestLinearModel_Info(t *testing.T) {
	info := Fallback().Info()
	assert.Equal(t, "Linear Regression", info.ModelType)
	assert.Equal(t, models.Fields, info.Features)
	assert.Len(t, info.FeatureDescriptions, 5)
}

func TestFormatUSD(t *testing.T) {
	cases := map[float64]string{
		0:          "$0.00",
		999.5:      "$999.50",
		1234567.89: "$1,234,567.89",
		100000:     "$100,000.00",
		-2500:      "-$2,500.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatUSD(in), "%v", in)
	}
}

func TestResultEchoesInput(t *testing.T) {
	in := models.FormInput{Bedrooms: "3", Bathrooms: "2", SqftLiving: "2000", Floors: "2", Age: "10"}
	res := Result(585000, in)
	assert.Equal(t, in, res.InputFeatures)
	assert.Equal(t, "$585,000.00", res.FormattedPrice)
}
