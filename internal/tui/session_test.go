package tui

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"HousePrice/internal/domain/models"
	"HousePrice/internal/form"
	"HousePrice/internal/services/pricing"
	"HousePrice/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type offline struct{}

func (offline) Health(context.Context) error { return errors.New("refused") }
func (offline) Predict(context.Context, models.FormInput) (models.PredictionResult, error) {
	return models.PredictionResult{}, errors.New("refused")
}

// scripted answers prompts from fixed queues.
type scripted struct {
	inputs   []string
	confirms []bool
	defaults []string
}

func (s *scripted) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.defaults = append(s.defaults, cfg.Default)
	if len(s.inputs) == 0 {
		return "", ErrAborted
	}
	v := s.inputs[0]
	s.inputs = s.inputs[1:]
	return v, nil
}

func (s *scripted) Confirm(context.Context, ConfirmConfig) (bool, error) {
	if len(s.confirms) == 0 {
		return false, ErrAborted
	}
	v := s.confirms[0]
	s.confirms = s.confirms[1:]
	return v, nil
}

func newEstimator() *usecase.Estimator {
	return usecase.NewEstimator(offline{}, pricing.Fallback(), form.NewValidator(), nil, nil)
}

func TestSession_RunTwice(t *testing.T) {
	var out bytes.Buffer
	d := &scripted{
		inputs: []string{
			"3", "2", "2000", "2", "10",
			"3", "2", "2000", "2", "300",
		},
		// another? yes, clear? no, another? no
		confirms: []bool{true, false, false},
	}
	s := NewSession(newEstimator(), d, &out)

	require.NoError(t, s.Run(context.Background()))
	assert.Contains(t, out.String(), "Demo mode")
	assert.Contains(t, out.String(), "Estimated price: $585,000.00")
	assert.Contains(t, out.String(), "Error: Age must be between 0 and 200 years")
	// second round offers the previous answers as defaults
	assert.Equal(t, []string{"", "", "", "", "", "3", "2", "2000", "2", "10"}, d.defaults)
}

func TestSession_ResetClearsDefaults(t *testing.T) {
	d := &scripted{
		inputs:   []string{"3", "2", "2000", "2", "10"},
		confirms: []bool{true, true},
	}
	s := NewSession(newEstimator(), d, &bytes.Buffer{})

	assert.ErrorIs(t, s.Run(context.Background()), ErrAborted)
	assert.Equal(t, "", d.defaults[len(d.defaults)-1])
}

func TestSession_Once(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(newEstimator(), nil, &out)

	err := s.Once(context.Background(), models.FormInput{Bedrooms: "1", Bathrooms: "0.5", SqftLiving: "100", Floors: "1", Age: "200"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Estimated price: $100,000.00")
	assert.Contains(t, out.String(), "(simplified estimate)")
}
