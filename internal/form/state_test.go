package form

import (
	"testing"

	"HousePrice/internal/domain/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_EditClearsTransientFlags(t *testing.T) {
	s := State{Error: "Please fill in all fields", Success: true}
	require.NoError(t, s.Edit(models.FieldAge, "12"))

	assert.Equal(t, "12", s.Input.Age)
	assert.Empty(t, s.Error)
	assert.False(t, s.Success)
}

func TestState_EditUnknownField(t *testing.T) {
	var s State
	assert.Error(t, s.Edit("garage", "1"))
}

func TestState_ResetClearsEverything(t *testing.T) {
	var s State
	s.Fill(validInput())
	s.Succeed(models.PredictionResult{PredictedPrice: 585000, FormattedPrice: "$585,000.00"}, models.SourceFallback)
	require.True(t, s.Success)

	s.Reset()
	if diff := cmp.Diff(State{}, s); diff != "" {
		t.Fatalf("state not reset (-want +got):\n%s", diff)
	}
}

func TestState_FailDropsPrediction(t *testing.T) {
	var s State
	s.Succeed(models.PredictionResult{PredictedPrice: 1}, models.SourceRemote)
	s.Fail("boom")

	assert.Nil(t, s.Prediction)
	assert.Equal(t, "boom", s.Error)
	assert.False(t, s.Success)
}

func TestState_CloneIsDeep(t *testing.T) {
	var s State
	s.Succeed(models.PredictionResult{PredictedPrice: 10}, models.SourceRemote)

	c := s.Clone()
	c.Prediction.PredictedPrice = 20
	assert.Equal(t, 10.0, s.Prediction.PredictedPrice)
}
