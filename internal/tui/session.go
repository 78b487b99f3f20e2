package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"HousePrice/internal/domain/models"
	"HousePrice/internal/form"
	"HousePrice/internal/usecase"
)

var help = map[models.Field]string{
	models.FieldBedrooms:   "From 1 to 10",
	models.FieldBathrooms:  "From 0.5 to 10, halves allowed",
	models.FieldSqftLiving: "Living area from 100 to 20,000 square feet",
	models.FieldFloors:     "From 1 to 5",
	models.FieldAge:        "Years since construction, 0 to 200",
}

// Session drives the estimate form from a terminal.
type Session struct {
	est    *usecase.Estimator
	driver PromptDriver
	out    io.Writer
}

func NewSession(est *usecase.Estimator, driver PromptDriver, out io.Writer) *Session {
	return &Session{est: est, driver: driver, out: out}
}

// Run checks service health once, then loops prompt, submit, report until the
// user declines another estimate.
func (s *Session) Run(ctx context.Context) error {
	if !s.est.Mount(ctx) {
		fmt.Fprintln(s.out, "Demo mode: prediction service unavailable, using a simplified formula.")
	}
	for {
		if err := s.prompt(ctx); err != nil {
			return err
		}
		s.report(s.est.Submit(ctx))

		again, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Estimate another property?", Default: true})
		if err != nil || !again {
			return err
		}
		reset, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Clear the form first?", Default: false})
		if err != nil {
			return err
		}
		if reset {
			s.est.Reset()
		}
	}
}

// Once submits in without prompting and writes the outcome.
func (s *Session) Once(ctx context.Context, in models.FormInput) error {
	s.est.Mount(ctx)
	s.est.Fill(in)
	st, err := s.est.Submit(ctx)
	s.report(st, err)
	return err
}

func (s *Session) prompt(ctx context.Context) error {
	current := s.est.State().Input
	for _, f := range models.Fields {
		v, err := s.driver.Input(ctx, InputConfig{
			Message: form.Label(f) + ":",
			Default: current.Get(f),
			Help:    help[f],
		})
		if err != nil {
			return err
		}
		if err := s.est.Edit(f, v); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) report(st form.State, err error) {
	switch {
	case errors.Is(err, usecase.ErrStale):
		return
	case st.Error != "":
		fmt.Fprintf(s.out, "Error: %s\n", st.Error)
	case st.Success && st.Prediction != nil:
		fmt.Fprintf(s.out, "Estimated price: %s\n", st.Prediction.FormattedPrice)
		if st.Source == models.SourceFallback {
			fmt.Fprintln(s.out, "(simplified estimate)")
		}
	}
}
